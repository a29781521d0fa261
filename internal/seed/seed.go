// Package seed holds the built-in default collections. A collection's
// seed is written back to the store the first time a load finds the key
// missing or unparsable, so later loads are stable.
package seed

import (
	"time"

	"github.com/Naveenkumar3327/Campus-link/internal/app/models"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/auth"
	"github.com/Naveenkumar3327/Campus-link/internal/pkg/logger"
)

// DemoPassword is the shared password of the seeded demo accounts.
const DemoPassword = "password123"

var demoPasswordHash string

func init() {
	hash, err := auth.HashPassword(DemoPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to hash demo password")
	}
	demoPasswordHash = hash
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// Users returns the seeded account directory: one student, one staff
// member and one admin, all with the demo password.
func Users() []models.User {
	return []models.User{
		{
			ID:           "1",
			Name:         "John Student",
			Email:        "student@campus.edu",
			PasswordHash: demoPasswordHash,
			Role:         models.RoleStudent,
			RollNumber:   "CS2021001",
			CreatedAt:    date("2024-01-15"),
		},
		{
			ID:           "2",
			Name:         "Sarah Staff",
			Email:        "staff@campus.edu",
			PasswordHash: demoPasswordHash,
			Role:         models.RoleStaff,
			CreatedAt:    date("2024-01-10"),
		},
		{
			ID:           "3",
			Name:         "Admin User",
			Email:        "admin@campus.edu",
			PasswordHash: demoPasswordHash,
			Role:         models.RoleAdmin,
			CreatedAt:    date("2024-01-01"),
		},
	}
}

// Announcements returns the seeded announcements.
func Announcements() []models.Announcement {
	return []models.Announcement{
		{
			ID:         "1",
			Title:      "Mid-Term Examinations Schedule",
			Body:       "The mid-term examinations will commence from March 15th, 2024. Students are advised to check their respective timetables and prepare accordingly.",
			Category:   models.AnnouncementExam,
			Date:       date("2024-03-01"),
			Author:     "Academic Office",
			AuthorRole: models.RoleAdmin,
		},
		{
			ID:         "2",
			Title:      "Annual Tech Fest - TechnoVision 2024",
			Body:       "Get ready for the biggest tech event of the year! Registration opens on March 10th. Exciting competitions, workshops, and guest speakers await.",
			Category:   models.AnnouncementEvent,
			Date:       date("2024-03-05"),
			Author:     "Event Committee",
			AuthorRole: models.RoleStaff,
		},
		{
			ID:         "3",
			Title:      "Spring Break Holiday Notice",
			Body:       "The campus will remain closed from March 20th to March 25th for spring break. Classes will resume on March 26th.",
			Category:   models.AnnouncementHoliday,
			Date:       date("2024-03-08"),
			Author:     "Administration",
			AuthorRole: models.RoleAdmin,
		},
	}
}

// Complaints returns the seeded complaints, one pending and one in
// progress.
func Complaints() []models.Complaint {
	return []models.Complaint{
		{
			ID:          "1",
			Title:       "Wi-Fi Connection Issues in Hostel Block A",
			Description: "The internet connection has been very slow and unstable for the past week. Students are facing difficulties attending online classes.",
			Category:    models.ComplaintInternet,
			Status:      models.ComplaintPending,
			Date:        date("2024-03-08"),
			UserID:      "1",
			UserName:    "John Student",
		},
		{
			ID:          "2",
			Title:       "Water Supply Problem",
			Description: "No water supply in the 3rd floor of Block B since yesterday morning.",
			Category:    models.ComplaintWater,
			Status:      models.ComplaintInProgress,
			Date:        date("2024-03-07"),
			UserID:      "1",
			UserName:    "John Student",
		},
	}
}

// LostFoundItems returns the seeded lost-and-found postings.
func LostFoundItems() []models.LostFoundItem {
	return []models.LostFoundItem{
		{
			ID:          "1",
			Name:        "iPhone 14 Pro",
			Description: "Black iPhone 14 Pro with a purple case. Lost near the library entrance.",
			Category:    models.LostFoundElectronics,
			Type:        models.TypeLost,
			Location:    "Library Entrance",
			Date:        date("2024-03-08"),
			PostedBy:    "John Student",
			Resolved:    false,
		},
		{
			ID:          "2",
			Name:        "Engineering Textbook",
			Description: "Found a \"Digital Signal Processing\" textbook in Classroom 301. Has someone's name written inside.",
			Category:    models.LostFoundBooks,
			Type:        models.TypeFound,
			Location:    "Classroom 301",
			Date:        date("2024-03-07"),
			PostedBy:    "Sarah Staff",
			Resolved:    false,
		},
	}
}

// Polls returns the seeded polls.
func Polls() []models.Poll {
	return []models.Poll{
		{
			ID:       "1",
			Question: "Which time slot would you prefer for the guest lecture?",
			Options: []models.PollOption{
				{ID: "1", Text: "10:00 AM - 11:00 AM", Votes: 45},
				{ID: "2", Text: "2:00 PM - 3:00 PM", Votes: 32},
				{ID: "3", Text: "4:00 PM - 5:00 PM", Votes: 28},
			},
			CreatedBy:  "Academic Office",
			CreatedAt:  date("2024-03-08"),
			VotedUsers: []string{},
		},
		{
			ID:       "2",
			Question: "What type of workshop would you be most interested in?",
			Options: []models.PollOption{
				{ID: "1", Text: "AI & Machine Learning", Votes: 65},
				{ID: "2", Text: "Web Development", Votes: 48},
				{ID: "3", Text: "Mobile App Development", Votes: 35},
				{ID: "4", Text: "Data Science", Votes: 42},
			},
			CreatedBy:  "Event Committee",
			CreatedAt:  date("2024-03-07"),
			VotedUsers: []string{},
		},
	}
}

// Events returns the seeded campus events.
func Events() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "TechnoVision 2024 - Annual Tech Fest",
			Description: "Join us for the biggest technology festival of the year! Featuring competitions, workshops, guest speakers from top tech companies, and networking opportunities.",
			Date:        date("2024-03-25"),
			Location:    "Main Auditorium & Campus Grounds",
			CreatedBy:   "Event Committee",
			RSVPUsers:   []string{},
		},
		{
			ID:          "2",
			Title:       "Career Fair 2024",
			Description: "Meet with representatives from leading companies and explore internship and job opportunities. Don't miss this chance to network and showcase your skills.",
			Date:        date("2024-04-10"),
			Location:    "Sports Complex",
			CreatedBy:   "Placement Office",
			RSVPUsers:   []string{},
		},
	}
}

// FeedbackEntries returns the seeded feedback, one answered and one open.
func FeedbackEntries() []models.Feedback {
	return []models.Feedback{
		{
			ID:       "1",
			Title:    "Excellent Campus Facilities",
			Message:  "The new library renovation looks amazing! The study spaces are much more comfortable now. Thank you for the improvements.",
			Date:     date("2024-03-08"),
			UserID:   "1",
			UserName: "John Student",
			Response: "Thank you for your positive feedback! We're glad you're enjoying the new facilities.",
		},
		{
			ID:       "2",
			Title:    "Suggestion for Food Court",
			Message:  "Could we have more vegetarian options in the food court? Many students have requested this.",
			Date:     date("2024-03-07"),
			UserID:   "1",
			UserName: "John Student",
		},
	}
}

// TimetableEntries returns the seeded personal timetable of the demo
// student.
func TimetableEntries() []models.TimetableEntry {
	return []models.TimetableEntry{
		{ID: "1", Subject: "Data Structures", Time: "09:00 AM - 10:30 AM", Day: "Monday", UserID: "1"},
		{ID: "2", Subject: "Computer Networks", Time: "11:00 AM - 12:30 PM", Day: "Monday", UserID: "1"},
		{ID: "3", Subject: "Database Systems", Time: "02:00 PM - 03:30 PM", Day: "Tuesday", UserID: "1"},
		{ID: "4", Subject: "Software Engineering", Time: "09:00 AM - 10:30 AM", Day: "Wednesday", UserID: "1"},
	}
}

// Achievements returns the seeded GrowTogether achievements. Progress
// values are cosmetic constants.
func Achievements() []models.Achievement {
	return []models.Achievement{
		{
			ID: "ACH001", Title: "First Steps",
			Description:  "Complete your first assignment submission",
			Category:     models.GrowAcademic,
			Points:       10,
			DateEarned:   "2025-01-20T10:30:00Z",
			Difficulty:   "bronze",
			IsEarned:     true,
			Requirements: []string{"Submit first assignment"},
			Progress:     100,
		},
		{
			ID: "ACH002", Title: "Study Streak",
			Description:  "Maintain a 7-day study streak",
			Category:     models.GrowAcademic,
			Points:       25,
			DateEarned:   "2025-01-22T18:00:00Z",
			Difficulty:   "silver",
			IsEarned:     true,
			Requirements: []string{"Study for 7 consecutive days"},
			Progress:     100,
		},
		{
			ID: "ACH003", Title: "Code Master",
			Description:  "Solve 50 programming problems",
			Category:     models.GrowAcademic,
			Points:       50,
			Difficulty:   "gold",
			IsEarned:     false,
			Requirements: []string{"Solve 50+ coding problems"},
			Progress:     72,
		},
		{
			ID: "ACH004", Title: "Team Player",
			Description:  "Join and contribute to 3 study groups",
			Category:     models.GrowLeadership,
			Points:       30,
			DateEarned:   "2025-01-25T14:15:00Z",
			Difficulty:   "silver",
			IsEarned:     true,
			Requirements: []string{"Join 3 study groups", "Active participation"},
			Progress:     100,
		},
		{
			ID: "ACH005", Title: "Resource Sharer",
			Description:  "Upload 10 educational resources",
			Category:     models.GrowCommunity,
			Points:       40,
			Difficulty:   "gold",
			IsEarned:     false,
			Requirements: []string{"Upload 10+ resources", "Get positive ratings"},
			Progress:     60,
		},
		{
			ID: "ACH006", Title: "Perfect Attendance",
			Description:  "Attend all classes for a month",
			Category:     models.GrowAcademic,
			Points:       35,
			Difficulty:   "silver",
			IsEarned:     false,
			Requirements: []string{"100% attendance for 30 days"},
			Progress:     85,
		},
		{
			ID: "ACH007", Title: "Event Organizer",
			Description:  "Successfully organize a campus event",
			Category:     models.GrowLeadership,
			Points:       75,
			Difficulty:   "platinum",
			IsEarned:     false,
			Requirements: []string{"Organize event with 50+ participants", "Positive feedback"},
			Progress:     20,
		},
		{
			ID: "ACH008", Title: "Mentor",
			Description:  "Help 5 junior students with their studies",
			Category:     models.GrowCommunity,
			Points:       45,
			Difficulty:   "gold",
			IsEarned:     false,
			Requirements: []string{"Mentor 5+ junior students", "Positive feedback"},
			Progress:     40,
		},
	}
}

// Leaderboard returns the seeded ranking in overall-points order.
func Leaderboard() []models.LeaderboardEntry {
	return []models.LeaderboardEntry{
		{
			Rank: 1, Name: "Priya Sharma", Email: "priya.sharma@sece.ac.in",
			Department: "Computer Science Engineering", Year: "3rd Year",
			TotalPoints: 485, Achievements: 12,
			Badges:       []string{"Study Master", "Code Ninja", "Team Leader"},
			WeeklyPoints: 95, MonthlyPoints: 285,
		},
		{
			Rank: 2, Name: "Rahul Kumar", Email: "rahul.kumar@sece.ac.in",
			Department: "Computer Science Engineering", Year: "3rd Year",
			TotalPoints: 462, Achievements: 11,
			Badges:       []string{"Problem Solver", "Consistent Learner"},
			WeeklyPoints: 88, MonthlyPoints: 275,
		},
		{
			Rank: 3, Name: "Sneha Patel", Email: "sneha.patel@sece.ac.in",
			Department: "Computer Science Engineering", Year: "3rd Year",
			TotalPoints: 438, Achievements: 10,
			Badges:       []string{"Project Leader", "Resource Creator"},
			WeeklyPoints: 82, MonthlyPoints: 268,
		},
		{
			Rank: 4, Name: "Ankit Verma", Email: "ankit.verma@sece.ac.in",
			Department: "Computer Science Engineering", Year: "2nd Year",
			TotalPoints: 378, Achievements: 9,
			Badges:       []string{"Study Buddy", "Helper"},
			WeeklyPoints: 75, MonthlyPoints: 245,
		},
		{
			Rank: 5, Name: "Kavita Joshi", Email: "kavita.joshi@sece.ac.in",
			Department: "Computer Science Engineering", Year: "2nd Year",
			TotalPoints: 356, Achievements: 8,
			Badges:       []string{"Creative Thinker"},
			WeeklyPoints: 68, MonthlyPoints: 230,
		},
		{
			Rank: 6, Name: "Rajesh Gupta", Email: "rajesh.gupta@sece.ac.in",
			Department: "Computer Science Engineering", Year: "3rd Year",
			TotalPoints: 325, Achievements: 7,
			Badges:       []string{"Dedicated Student"},
			WeeklyPoints: 62, MonthlyPoints: 215,
		},
		{
			Rank: 7, Name: "Meera Singh", Email: "meera.singh@sece.ac.in",
			Department: "Computer Science Engineering", Year: "2nd Year",
			TotalPoints: 298, Achievements: 6,
			Badges:       []string{"Rising Star"},
			WeeklyPoints: 58, MonthlyPoints: 198,
		},
		{
			Rank: 8, Name: "John Student", Email: "student@campus.edu",
			Department: "Computer Science Engineering", Year: "3rd Year",
			TotalPoints: 195, Achievements: 3,
			Badges:       []string{"First Steps", "Team Player"},
			WeeklyPoints: 45, MonthlyPoints: 125,
		},
	}
}

// Activities returns the seeded GrowTogether activity feed.
func Activities() []models.Activity {
	return []models.Activity{
		{
			ID: "ACT001", Type: "achievement",
			Title:       "Achievement Unlocked: Team Player",
			Description: "Joined and contributed to 3 study groups",
			StudentName: "John Student", StudentEmail: "student@campus.edu",
			Points: 30, Timestamp: date("2025-01-25"), Category: "leadership",
		},
		{
			ID: "ACT002", Type: "achievement",
			Title:       "Achievement Unlocked: Study Streak",
			Description: "Maintained a 7-day study streak",
			StudentName: "John Student", StudentEmail: "student@campus.edu",
			Points: 25, Timestamp: date("2025-01-22"), Category: "academic",
		},
		{
			ID: "ACT003", Type: "milestone",
			Title:       "Reached 100 Total Points",
			Description: "Milestone achievement for consistent performance",
			StudentName: "John Student", StudentEmail: "student@campus.edu",
			Points: 20, Timestamp: date("2025-01-21"), Category: "milestone",
		},
		{
			ID: "ACT004", Type: "achievement",
			Title:       "Priya earned Code Master",
			Description: "Solved 50+ programming problems",
			StudentName: "Priya Sharma", StudentEmail: "priya.sharma@sece.ac.in",
			Points: 50, Timestamp: date("2025-01-20"), Category: "academic",
		},
		{
			ID: "ACT005", Type: "recognition",
			Title:       "Top Contributor of the Week",
			Description: "Recognized for outstanding community contributions",
			StudentName: "Rahul Kumar", StudentEmail: "rahul.kumar@sece.ac.in",
			Points: 40, Timestamp: date("2025-01-19"), Category: "community",
		},
	}
}

// Challenges returns the seeded GrowTogether challenges.
func Challenges() []models.Challenge {
	return []models.Challenge{
		{
			ID: "CHA001", Title: "30-Day Study Challenge",
			Description:  "Study for at least 2 hours every day for 30 consecutive days. Track your progress and maintain consistency.",
			Category:     models.GrowAcademic,
			Difficulty:   "medium",
			Points:       75,
			StartDate:    "2025-01-15T00:00:00Z",
			EndDate:      "2025-02-14T23:59:59Z",
			Participants: 156, MaxParticipants: 200,
			Requirements: []string{"Study 2+ hours daily", "Log study sessions", "No breaks longer than 1 day"},
			Progress:     65,
			Rewards:      []string{"Study Master Badge", "75 Points", "Certificate of Completion"},
			JoinedUsers:  []string{},
		},
		{
			ID: "CHA002", Title: "Code-a-thon February",
			Description:  "Solve 100 coding problems in the month of February. Improve your problem-solving skills and algorithm knowledge.",
			Category:     models.GrowSkill,
			Difficulty:   "hard",
			Points:       100,
			StartDate:    "2025-02-01T00:00:00Z",
			EndDate:      "2025-02-28T23:59:59Z",
			Participants: 89, MaxParticipants: 150,
			Requirements: []string{"Solve 100+ problems", "At least 5 different topics", "Maintain 70% accuracy"},
			Progress:     0,
			Rewards:      []string{"Code Ninja Badge", "100 Points", "Programming Certificate", "Mentorship Opportunity"},
			JoinedUsers:  []string{},
		},
		{
			ID: "CHA003", Title: "Community Helper",
			Description:  "Help 10 fellow students with their academic queries. Build a supportive learning community.",
			Category:     models.GrowCommunity,
			Difficulty:   "easy",
			Points:       50,
			StartDate:    "2025-01-20T00:00:00Z",
			EndDate:      "2025-02-20T23:59:59Z",
			Participants: 134, MaxParticipants: 300,
			Requirements: []string{"Help 10+ students", "Positive feedback required", "Active community participation"},
			Progress:     30,
			Rewards:      []string{"Helper Badge", "50 Points", "Community Recognition"},
			JoinedUsers:  []string{},
		},
		{
			ID: "CHA004", Title: "Leadership Workshop Series",
			Description:  "Attend all 5 leadership workshops and complete the practical assignments to develop leadership skills.",
			Category:     models.GrowLeadership,
			Difficulty:   "medium",
			Points:       85,
			StartDate:    "2025-01-25T00:00:00Z",
			EndDate:      "2025-03-15T23:59:59Z",
			Participants: 67, MaxParticipants: 100,
			Requirements: []string{"Attend all 5 workshops", "Complete assignments", "Lead a team project"},
			Progress:     20,
			Rewards:      []string{"Leadership Badge", "85 Points", "Leadership Certificate", "Recommendation Letter"},
			JoinedUsers:  []string{},
		},
		{
			ID: "CHA005", Title: "Perfect Attendance Month",
			Description:  "Achieve 100% attendance for all classes in the month of February.",
			Category:     models.GrowAcademic,
			Difficulty:   "easy",
			Points:       40,
			StartDate:    "2025-02-01T00:00:00Z",
			EndDate:      "2025-02-28T23:59:59Z",
			Participants: 245, MaxParticipants: 500,
			Requirements: []string{"100% class attendance", "No unauthorized absences", "Punctuality maintained"},
			Progress:     0,
			Rewards:      []string{"Attendance Star Badge", "40 Points", "Appreciation Certificate"},
			JoinedUsers:  []string{},
		},
	}
}

// RefreshTokens returns the initial (empty) refresh token collection.
func RefreshTokens() []models.RefreshToken {
	return []models.RefreshToken{}
}
