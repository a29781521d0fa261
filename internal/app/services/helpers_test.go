package services

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/app/repositories"
	"github.com/Naveenkumar3327/Campus-link/internal/store"
)

// testCollection binds a fixture to an in-memory store.
func testCollection[T any](t *testing.T, key string, fixture []T) *repositories.Collection[T] {
	t.Helper()
	st := store.NewMemoryStore()
	t.Cleanup(func() { st.Close() })
	return repositories.NewCollection(st, key, func() []T { return fixture }, zerolog.Nop())
}

var (
	student = &models.User{ID: "u-student", Name: "Asha Patel", Email: "asha@campus.edu", Role: models.RoleStudent}
	staff   = &models.User{ID: "u-staff", Name: "Ravi Menon", Email: "ravi@campus.edu", Role: models.RoleStaff}
	admin   = &models.User{ID: "u-admin", Name: "Site Admin", Email: "root@campus.edu", Role: models.RoleAdmin}
)
