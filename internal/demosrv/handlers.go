package demosrv

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

type studentRequest struct {
	Name       string `json:"name" validate:"required"`
	RollNumber string `json:"rollNumber" validate:"required"`
	Class      string `json:"class" validate:"required"`
	Section    string `json:"section"`
	Email      string `json:"email" validate:"omitempty,email"`
	Phone      string `json:"phone"`
	Photo      string `json:"photo"`
}

func (s *Server) handleListStudents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listStudents(r.URL.Query().Get("classId")))
}

func (s *Server) handleGetStudent(w http.ResponseWriter, r *http.Request) {
	st, ok := s.store.getStudent(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleCreateStudent(w http.ResponseWriter, r *http.Request) {
	var req studentRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid student payload")
		return
	}
	st := s.store.addStudent(domain.Student{
		Name:       req.Name,
		RollNumber: req.RollNumber,
		Class:      req.Class,
		Section:    req.Section,
		Email:      req.Email,
		Phone:      req.Phone,
		Photo:      req.Photo,
		SchoolID:   requestUser(r).SchoolID,
	})
	writeJSON(w, http.StatusCreated, st)
}

func (s *Server) handleUpdateStudent(w http.ResponseWriter, r *http.Request) {
	var req studentRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid student payload")
		return
	}
	st, ok := s.store.updateStudent(chi.URLParam(r, "id"), domain.Student{
		Name:       req.Name,
		RollNumber: req.RollNumber,
		Class:      req.Class,
		Section:    req.Section,
		Email:      req.Email,
		Phone:      req.Phone,
		Photo:      req.Photo,
		SchoolID:   requestUser(r).SchoolID,
	})
	if !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleDeleteStudent(w http.ResponseWriter, r *http.Request) {
	if !s.store.deleteStudent(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "student deleted"})
}

type attendanceRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"required,oneof=present absent late half-day leave"`
	Remarks   string `json:"remarks"`
}

func (s *Server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendanceRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid attendance payload")
		return
	}
	if _, ok := s.store.getStudent(req.StudentID); !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	rec := s.store.markAttendance(domain.AttendanceRecord{
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    domain.AttendanceStatus(req.Status),
		Remarks:   req.Remarks,
		MarkedBy:  requestUser(r).ID,
	})
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	recs := s.store.listAttendance(q.Get("studentId"), q.Get("date"))
	if recs == nil {
		recs = []domain.AttendanceRecord{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleClassStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	writeJSON(w, http.StatusOK, s.store.classStats(chi.URLParam(r, "classId"), date))
}

func (s *Server) handleStudentStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "studentId")
	if _, ok := s.store.getStudent(id); !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	writeJSON(w, http.StatusOK, s.store.studentStats(id))
}

func (s *Server) handleUpdateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendanceRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid attendance payload")
		return
	}
	rec, ok := s.store.updateAttendance(chi.URLParam(r, "id"), domain.AttendanceRecord{
		StudentID: req.StudentID,
		Date:      req.Date,
		Status:    domain.AttendanceStatus(req.Status),
		Remarks:   req.Remarks,
		MarkedBy:  requestUser(r).ID,
	})
	if !ok {
		writeError(w, http.StatusNotFound, "attendance record not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteAttendance(w http.ResponseWriter, r *http.Request) {
	if !s.store.deleteAttendance(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "attendance record not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "attendance record deleted"})
}

type classRequest struct {
	Name      string `json:"name" validate:"required"`
	Section   string `json:"section"`
	TeacherID string `json:"teacherId"`
}

func (s *Server) handleListClasses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.listClasses())
}

func (s *Server) handleGetClass(w http.ResponseWriter, r *http.Request) {
	c, ok := s.store.getClass(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "class not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleCreateClass(w http.ResponseWriter, r *http.Request) {
	var req classRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid class payload")
		return
	}
	c := s.store.addClass(domain.Class{
		Name:      req.Name,
		Section:   req.Section,
		TeacherID: req.TeacherID,
		SchoolID:  requestUser(r).SchoolID,
	})
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateClass(w http.ResponseWriter, r *http.Request) {
	var req classRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid class payload")
		return
	}
	c, ok := s.store.updateClass(chi.URLParam(r, "id"), domain.Class{
		Name:      req.Name,
		Section:   req.Section,
		TeacherID: req.TeacherID,
		SchoolID:  requestUser(r).SchoolID,
	})
	if !ok {
		writeError(w, http.StatusNotFound, "class not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteClass(w http.ResponseWriter, r *http.Request) {
	if !s.store.deleteClass(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "class not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "class deleted"})
}

type leaveRequest struct {
	StudentID string `json:"studentId" validate:"required"`
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Reason    string `json:"reason" validate:"required"`
}

func (s *Server) handleApplyLeave(w http.ResponseWriter, r *http.Request) {
	var req leaveRequest
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid leave payload")
		return
	}
	if req.EndDate < req.StartDate {
		writeError(w, http.StatusBadRequest, "end date is before start date")
		return
	}
	app := s.store.addLeave(domain.LeaveApplication{
		StudentID: req.StudentID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	})
	writeJSON(w, http.StatusCreated, app)
}

func (s *Server) handleListLeaves(w http.ResponseWriter, r *http.Request) {
	apps := s.store.listLeaves(domain.LeaveStatus(r.URL.Query().Get("status")))
	if apps == nil {
		apps = []domain.LeaveApplication{}
	}
	writeJSON(w, http.StatusOK, apps)
}

func (s *Server) handleApproveLeave(w http.ResponseWriter, r *http.Request) {
	s.handleLeaveDecision(w, r, domain.LeaveApproved)
}

func (s *Server) handleRejectLeave(w http.ResponseWriter, r *http.Request) {
	s.handleLeaveDecision(w, r, domain.LeaveRejected)
}

func (s *Server) handleLeaveDecision(w http.ResponseWriter, r *http.Request, status domain.LeaveStatus) {
	user := requestUser(r)
	if user.Role != domain.RoleAdmin && user.Role != domain.RoleTeacher {
		writeError(w, http.StatusForbidden, "only staff can decide leave applications")
		return
	}
	app, ok := s.store.setLeaveStatus(chi.URLParam(r, "id"), status, user.ID)
	if !ok {
		writeError(w, http.StatusNotFound, "leave application not found")
		return
	}
	writeJSON(w, http.StatusOK, app)
}

func (s *Server) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	date := q.Get("date")
	if date == "" {
		date = time.Now().Format(dateLayout)
	}
	writeJSON(w, http.StatusOK, s.store.report(q.Get("classId"), date, date))
}

func (s *Server) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	start, err := time.Parse(dateLayout, q.Get("startDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		return
	}
	from := start.Format(dateLayout)
	to := start.AddDate(0, 0, 6).Format(dateLayout)
	writeJSON(w, http.StatusOK, s.store.report(q.Get("classId"), from, to))
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	month, err := time.Parse("2006-01", q.Get("month"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "month must be YYYY-MM")
		return
	}
	from := month.Format(dateLayout)
	to := month.AddDate(0, 1, -1).Format(dateLayout)
	writeJSON(w, http.StatusOK, s.store.report(q.Get("classId"), from, to))
}

func (s *Server) handleStudentReport(w http.ResponseWriter, r *http.Request) {
	var from, to string
	if m := r.URL.Query().Get("month"); m != "" {
		month, err := time.Parse("2006-01", m)
		if err != nil {
			writeError(w, http.StatusBadRequest, "month must be YYYY-MM")
			return
		}
		from = month.Format(dateLayout)
		to = month.AddDate(0, 1, -1).Format(dateLayout)
	}
	row, ok := s.store.studentReport(chi.URLParam(r, "studentId"), from, to)
	if !ok {
		writeError(w, http.StatusNotFound, "student not found")
		return
	}
	writeJSON(w, http.StatusOK, row)
}
