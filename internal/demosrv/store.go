package demosrv

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

const dateLayout = "2006-01-02"

// account is a demo login row.
type account struct {
	user     domain.User
	password string
}

// memStore holds all demo data for the lifetime of the process.
type memStore struct {
	mu         sync.Mutex
	accounts   map[string]account // keyed by email
	students   []domain.Student
	classes    []domain.Class
	attendance []domain.AttendanceRecord
	leaves     []domain.LeaveApplication
}

// newMemStore seeds a small school: the three demo accounts, two classes,
// a roster, and a week of attendance history ending today.
func newMemStore() *memStore {
	s := &memStore{accounts: map[string]account{}}

	for _, a := range []account{
		{domain.User{ID: "1", Email: "admin@school.com", Name: "Admin User", Role: domain.RoleAdmin, SchoolID: "1"}, "password123"},
		{domain.User{ID: "2", Email: "teacher@school.com", Name: "Teacher User", Role: domain.RoleTeacher, SchoolID: "1"}, "password123"},
		{domain.User{ID: "3", Email: "student@school.com", Name: "Student User", Role: domain.RoleStudent, SchoolID: "1", ClassID: "c1"}, "password123"},
	} {
		s.accounts[a.user.Email] = a
	}

	s.classes = []domain.Class{
		{ID: "c1", Name: "Grade 6", Section: "A", SchoolID: "1", TeacherID: "2"},
		{ID: "c2", Name: "Grade 7", Section: "B", SchoolID: "1", TeacherID: "2"},
	}

	names := []struct {
		name  string
		class string
	}{
		{"Aarav Sharma", "c1"}, {"Bianca Torres", "c1"}, {"Chen Wei", "c1"},
		{"Divya Nair", "c1"}, {"Ethan Brooks", "c2"}, {"Fatima Khan", "c2"},
		{"Grace Okafor", "c2"}, {"Hiro Tanaka", "c2"},
	}
	// Student.Class carries the class ID, same as the classId filter the
	// list endpoint accepts.
	now := time.Now()
	for i, n := range names {
		cls := s.classByID(n.class)
		s.students = append(s.students, domain.Student{
			ID:         uuid.NewString(),
			Name:       n.name,
			RollNumber: strconv.Itoa(i + 1),
			Class:      n.class,
			Section:    cls.Section,
			Email:      strings.ToLower(strings.ReplaceAll(n.name, " ", ".")) + "@school.com",
			Phone:      "555-010" + strconv.Itoa(i),
			SchoolID:   "1",
			CreatedAt:  now.AddDate(0, -6, 0),
		})
	}

	// A week of history: everyone present, with a sprinkle of exceptions.
	for day := 6; day >= 0; day-- {
		date := now.AddDate(0, 0, -day).Format(dateLayout)
		for i, st := range s.students {
			status := domain.StatusPresent
			switch {
			case day == 2 && i%5 == 1:
				status = domain.StatusAbsent
			case day == 1 && i%4 == 2:
				status = domain.StatusLate
			case day == 3 && i == 0:
				status = domain.StatusHalfDay
			}
			s.attendance = append(s.attendance, domain.AttendanceRecord{
				ID:        uuid.NewString(),
				StudentID: st.ID,
				Date:      date,
				Status:    status,
				MarkedBy:  "2",
				CreatedAt: now.AddDate(0, 0, -day),
				UpdatedAt: now.AddDate(0, 0, -day),
			})
		}
	}

	s.leaves = []domain.LeaveApplication{
		{
			ID:        uuid.NewString(),
			StudentID: s.students[3].ID,
			StartDate: now.AddDate(0, 0, 2).Format(dateLayout),
			EndDate:   now.AddDate(0, 0, 4).Format(dateLayout),
			Reason:    "Family wedding",
			Status:    domain.LeavePending,
			CreatedAt: now,
		},
	}
	return s
}

func (s *memStore) classByID(id string) domain.Class {
	for _, c := range s.classes {
		if c.ID == id {
			return c
		}
	}
	return domain.Class{}
}

func (s *memStore) authenticate(email, password string) (domain.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[email]
	if !ok || a.password != password {
		return domain.User{}, false
	}
	return a.user, true
}

func (s *memStore) addAccount(user domain.User, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[user.Email]; exists {
		return false
	}
	s.accounts[user.Email] = account{user: user, password: password}
	return true
}

func (s *memStore) listStudents(classID string) []domain.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Student, 0, len(s.students))
	for _, st := range s.students {
		if classID == "" || st.Class == classID {
			out = append(out, st)
		}
	}
	return out
}

func (s *memStore) getStudent(id string) (domain.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return domain.Student{}, false
}

func (s *memStore) addStudent(st domain.Student) domain.Student {
	s.mu.Lock()
	defer s.mu.Unlock()
	st.ID = uuid.NewString()
	st.CreatedAt = time.Now()
	s.students = append(s.students, st)
	return st
}

func (s *memStore) updateStudent(id string, st domain.Student) (domain.Student, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.students {
		if cur.ID == id {
			st.ID = id
			st.CreatedAt = cur.CreatedAt
			s.students[i] = st
			return st, true
		}
	}
	return domain.Student{}, false
}

func (s *memStore) deleteStudent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.students {
		if cur.ID == id {
			s.students = append(s.students[:i], s.students[i+1:]...)
			return true
		}
	}
	return false
}

func (s *memStore) listClasses() []domain.Class {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Class(nil), s.classes...)
}

func (s *memStore) getClass(id string) (domain.Class, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.classes {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Class{}, false
}

func (s *memStore) addClass(c domain.Class) domain.Class {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = uuid.NewString()
	s.classes = append(s.classes, c)
	return c
}

func (s *memStore) updateClass(id string, c domain.Class) (domain.Class, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.classes {
		if cur.ID == id {
			c.ID = id
			s.classes[i] = c
			return c, true
		}
	}
	return domain.Class{}, false
}

func (s *memStore) deleteClass(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.classes {
		if cur.ID == id {
			s.classes = append(s.classes[:i], s.classes[i+1:]...)
			return true
		}
	}
	return false
}

// markAttendance upserts: re-marking the same student and date replaces the
// earlier record instead of duplicating the day.
func (s *memStore) markAttendance(rec domain.AttendanceRecord) domain.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for i, cur := range s.attendance {
		if cur.StudentID == rec.StudentID && cur.Date == rec.Date {
			rec.ID = cur.ID
			rec.CreatedAt = cur.CreatedAt
			rec.UpdatedAt = now
			s.attendance[i] = rec
			return rec
		}
	}
	rec.ID = uuid.NewString()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	s.attendance = append(s.attendance, rec)
	return rec
}

func (s *memStore) listAttendance(studentID, date string) []domain.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.AttendanceRecord
	for _, rec := range s.attendance {
		if studentID != "" && rec.StudentID != studentID {
			continue
		}
		if date != "" && rec.Date != date {
			continue
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

func (s *memStore) updateAttendance(id string, rec domain.AttendanceRecord) (domain.AttendanceRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.attendance {
		if cur.ID == id {
			rec.ID = id
			rec.CreatedAt = cur.CreatedAt
			rec.UpdatedAt = time.Now()
			s.attendance[i] = rec
			return rec, true
		}
	}
	return domain.AttendanceRecord{}, false
}

func (s *memStore) deleteAttendance(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cur := range s.attendance {
		if cur.ID == id {
			s.attendance = append(s.attendance[:i], s.attendance[i+1:]...)
			return true
		}
	}
	return false
}

// classStats summarizes one class for one date.
func (s *memStore) classStats(classID, date string) domain.AttendanceStats {
	students := s.listStudents(classID)
	byID := make(map[string]bool, len(students))
	for _, st := range students {
		byID[st.ID] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stats := domain.AttendanceStats{TotalStudents: len(students)}
	for _, rec := range s.attendance {
		if rec.Date != date || !byID[rec.StudentID] {
			continue
		}
		switch rec.Status {
		case domain.StatusPresent:
			stats.PresentToday++
		case domain.StatusAbsent:
			stats.AbsentToday++
		case domain.StatusLate:
			stats.LateToday++
		case domain.StatusHalfDay:
			stats.HalfDayToday++
		case domain.StatusLeave:
			stats.LeaveToday++
		}
	}
	if stats.TotalStudents > 0 {
		attending := float64(stats.PresentToday+stats.LateToday) + 0.5*float64(stats.HalfDayToday)
		stats.AttendancePercentage = round1(attending / float64(stats.TotalStudents) * 100)
	}
	return stats
}

func (s *memStore) studentStats(studentID string) domain.StudentAttendanceStats {
	recs := s.listAttendance(studentID, "")
	var stats domain.StudentAttendanceStats
	for _, rec := range recs {
		stats.TotalDays++
		switch rec.Status {
		case domain.StatusPresent:
			stats.PresentDays++
		case domain.StatusAbsent:
			stats.AbsentDays++
		case domain.StatusLate:
			stats.LateDays++
		case domain.StatusHalfDay:
			stats.HalfDays++
		case domain.StatusLeave:
			stats.LeaveDays++
		}
	}
	if stats.TotalDays > 0 {
		attending := float64(stats.PresentDays+stats.LateDays) + 0.5*float64(stats.HalfDays)
		stats.AttendancePercentage = round1(attending / float64(stats.TotalDays) * 100)
	}
	return stats
}

// report builds per-student rows for a class over [from, to] inclusive.
func (s *memStore) report(classID, from, to string) []domain.ReportRow {
	students := s.listStudents(classID)
	rows := make([]domain.ReportRow, 0, len(students))
	for _, st := range students {
		row := domain.ReportRow{StudentName: st.Name, RollNumber: st.RollNumber}
		for _, rec := range s.listAttendance(st.ID, "") {
			if rec.Date < from || rec.Date > to {
				continue
			}
			row.TotalDays++
			switch rec.Status {
			case domain.StatusPresent:
				row.PresentDays++
			case domain.StatusAbsent:
				row.AbsentDays++
			case domain.StatusLate:
				row.LateDays++
			case domain.StatusHalfDay:
				row.HalfDays++
			case domain.StatusLeave:
				row.LeaveDays++
			}
		}
		if row.TotalDays > 0 {
			attending := float64(row.PresentDays+row.LateDays) + 0.5*float64(row.HalfDays)
			row.AttendancePercentage = round1(attending / float64(row.TotalDays) * 100)
		}
		rows = append(rows, row)
	}
	return rows
}

func (s *memStore) studentReport(studentID, from, to string) (domain.ReportRow, bool) {
	st, ok := s.getStudent(studentID)
	if !ok {
		return domain.ReportRow{}, false
	}
	row := domain.ReportRow{StudentName: st.Name, RollNumber: st.RollNumber}
	for _, rec := range s.listAttendance(studentID, "") {
		if (from != "" && rec.Date < from) || (to != "" && rec.Date > to) {
			continue
		}
		row.TotalDays++
		switch rec.Status {
		case domain.StatusPresent:
			row.PresentDays++
		case domain.StatusAbsent:
			row.AbsentDays++
		case domain.StatusLate:
			row.LateDays++
		case domain.StatusHalfDay:
			row.HalfDays++
		case domain.StatusLeave:
			row.LeaveDays++
		}
	}
	if row.TotalDays > 0 {
		attending := float64(row.PresentDays+row.LateDays) + 0.5*float64(row.HalfDays)
		row.AttendancePercentage = round1(attending / float64(row.TotalDays) * 100)
	}
	return row, true
}

func (s *memStore) addLeave(app domain.LeaveApplication) domain.LeaveApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	app.ID = uuid.NewString()
	app.Status = domain.LeavePending
	app.CreatedAt = time.Now()
	s.leaves = append(s.leaves, app)
	return app
}

func (s *memStore) listLeaves(status domain.LeaveStatus) []domain.LeaveApplication {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.LeaveApplication
	for _, app := range s.leaves {
		if status == "" || app.Status == status {
			out = append(out, app)
		}
	}
	return out
}

func (s *memStore) setLeaveStatus(id string, status domain.LeaveStatus, approverID string) (domain.LeaveApplication, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, app := range s.leaves {
		if app.ID == id {
			app.Status = status
			app.ApprovedBy = approverID
			s.leaves[i] = app
			return app, true
		}
	}
	return domain.LeaveApplication{}, false
}

func round1(v float64) float64 {
	return float64(int(v*10+0.5)) / 10
}
