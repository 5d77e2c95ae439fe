package store

import "github.com/ratheesh-12/HostelMS/internal/model"

// SeedIdentities returns the mock identities accepted by the login flow.
// These are separate from the users collection shown on the admin page.
func SeedIdentities() []model.User {
	return []model.User{
		{
			ID:       "admin1",
			Username: "admin",
			Name:     "Admin User",
			Email:    "admin@hostel.com",
			Role:     model.RoleAdmin,
			Avatar:   "https://api.dicebear.com/7.x/bottts/svg?seed=admin",
		},
		{
			ID:       "staff1",
			Username: "staff",
			Name:     "Staff Member",
			Email:    "staff@hostel.com",
			Role:     model.RoleStaff,
			Avatar:   "https://api.dicebear.com/7.x/bottts/svg?seed=staff",
		},
		{
			ID:       "student1",
			Username: "student",
			Name:     "John Student",
			Email:    "student@hostel.com",
			Role:     model.RoleStudent,
			Avatar:   "https://api.dicebear.com/7.x/bottts/svg?seed=student",
		},
	}
}

func (s *Store) seed() {
	s.hostels = []model.Hostel{
		{ID: "h1", Name: "Sunrise Hostel", Location: "North Campus", TotalRooms: 50, AvailableRooms: 15, Image: "https://images.unsplash.com/photo-1555854877-bab0e564b8d5"},
		{ID: "h2", Name: "Maple Residence", Location: "South Campus", TotalRooms: 75, AvailableRooms: 8, Image: "https://images.unsplash.com/photo-1606046604972-77cc76aee944"},
		{ID: "h3", Name: "Horizon Heights", Location: "West Campus", TotalRooms: 30, AvailableRooms: 12, Image: "https://images.unsplash.com/photo-1551133989-5f8c0c9956d5"},
	}
	s.hostelSeq = len(s.hostels)

	s.rooms = []model.Room{
		{ID: "r1", Number: "101", Type: "single", Status: model.RoomAvailable, Price: 5000, HostelID: "h1"},
		{ID: "r2", Number: "102", Type: "double", Status: model.RoomOccupied, Price: 3500, HostelID: "h1"},
		{ID: "r3", Number: "201", Type: "single", Status: model.RoomMaintenance, Price: 4800, HostelID: "h2"},
		{ID: "r4", Number: "202", Type: "triple", Status: model.RoomAvailable, Price: 3000, HostelID: "h2"},
		{ID: "r5", Number: "301", Type: "quad", Status: model.RoomAvailable, Price: 2500, HostelID: "h3"},
	}
	s.roomSeq = len(s.rooms)

	s.bookings = []model.Booking{
		{ID: "b1", StudentID: "student1", StudentName: "John Student", RoomID: "r2", RoomNumber: "102", HostelID: "h1", HostelName: "Sunrise Hostel", Status: model.BookingApproved, BookingDate: "2023-01-15"},
	}
	s.bookingSeq = len(s.bookings)

	s.complaints = []model.Complaint{
		{ID: "c1", StudentID: "student1", StudentName: "John Student", Message: "Water heater not working in room 102", Status: model.ComplaintPending, Date: "2023-03-10"},
		{ID: "c2", StudentID: "student1", StudentName: "John Student", Message: "Wi-Fi connectivity issues", Response: "Our technician will check the router today", Status: model.ComplaintInProgress, StaffID: "staff1", StaffName: "Staff Member", Date: "2023-02-20"},
	}
	s.complaintSeq = len(s.complaints)

	s.documents = []model.Document{
		{ID: "doc1", StudentID: "student1", Name: "Student ID Card", Type: "Identity", Status: model.DocumentApproved, UploadDate: "2023-01-15", FileSize: "1.2 MB"},
		{ID: "doc2", StudentID: "student1", Name: "Address Proof", Type: "Address", Status: model.DocumentPending, UploadDate: "2023-02-20", FileSize: "2.5 MB"},
		{ID: "doc3", StudentID: "student1", Name: "Medical Certificate", Type: "Medical", Status: model.DocumentRejected, UploadDate: "2023-03-05", FileSize: "1.8 MB"},
	}
	s.documentSeq = len(s.documents)

	s.users = []model.User{
		{ID: "1", Name: "Admin User", Username: "admin", Email: "admin@hostel.com", Role: model.RoleAdmin, Status: model.UserActive, CreatedAt: "2023-01-15", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=admin"},
		{ID: "2", Name: "Staff Member", Username: "staff", Email: "staff@hostel.com", Role: model.RoleStaff, Status: model.UserActive, CreatedAt: "2023-01-20", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=staff"},
		{ID: "3", Name: "John Student", Username: "student", Email: "student@hostel.com", Role: model.RoleStudent, Status: model.UserActive, CreatedAt: "2023-02-05", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=student"},
		{ID: "4", Name: "Jane Smith", Username: "jane.smith", Email: "jane@hostel.com", Role: model.RoleStudent, Status: model.UserInactive, CreatedAt: "2023-02-10", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=jane"},
		{ID: "5", Name: "David Wilson", Username: "david.wilson", Email: "david@hostel.com", Role: model.RoleStaff, Status: model.UserActive, CreatedAt: "2023-02-15", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=david"},
	}
	s.userSeq = len(s.users)

	s.students = []model.Student{
		{ID: "student1", Name: "John Student", Email: "student@hostel.com", Room: "102", Hostel: "Sunrise Hostel", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=student"},
		{ID: "student2", Name: "Sarah Johnson", Email: "sarah@example.com", Room: "205", Hostel: "Maple Residence", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=sarah"},
		{ID: "student3", Name: "Michael Chen", Email: "michael@example.com", Room: "301", Hostel: "Horizon Heights", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=michael"},
		{ID: "student4", Name: "Lisa Anderson", Email: "lisa@example.com", Room: "110", Hostel: "Sunrise Hostel", Avatar: "https://api.dicebear.com/7.x/bottts/svg?seed=lisa"},
	}
	s.studentSeq = len(s.students)

	s.activityLogs = []model.ActivityLog{
		{ID: "l1", AdminID: "admin1", AdminName: "Admin User", Action: "Created new staff account", TargetUser: "Staff Member", Timestamp: "2023-01-05T10:30:00"},
		{ID: "l2", AdminID: "admin1", AdminName: "Admin User", Action: "Updated room status", TargetUser: "Room 201", Timestamp: "2023-02-15T14:45:00"},
	}

	s.notifications = []model.Notification{
		{ID: "n1", UserID: "student1", Message: "Your booking has been approved", Type: model.NotifySuccess, Read: false, CreatedAt: "2023-01-16T09:00:00"},
		{ID: "n2", UserID: "staff1", Message: "New complaint assigned to you", Type: model.NotifyInfo, Read: true, CreatedAt: "2023-02-21T11:30:00"},
		{ID: "n3", UserID: "admin1", Message: "System maintenance scheduled", Type: model.NotifyWarning, Read: false, CreatedAt: "2023-03-01T16:00:00"},
	}
	s.notifySeq = len(s.notifications)
}
