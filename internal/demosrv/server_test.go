package demosrv

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := New(testSecret, zerolog.Nop())
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body any, out any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func login(t *testing.T, ts *httptest.Server, email, password string) (string, domain.User) {
	t.Helper()
	var resp loginResponse
	r := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "", map[string]string{
		"email": email, "password": password,
	}, &resp)
	if r.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", email, r.StatusCode)
	}
	return resp.Token, resp.User
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	token, user := login(t, ts, "admin@school.com", "password123")
	if token == "" {
		t.Fatal("expected a token")
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("role = %q, want admin", user.Role)
	}

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/auth/login", "", map[string]string{
		"email": "admin@school.com", "password": "wrong",
	}, nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("wrong password: status %d, want 401", resp.StatusCode)
	}
}

func TestMeRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	token, user := login(t, ts, "teacher@school.com", "password123")

	var me domain.User
	resp := doJSON(t, http.MethodGet, ts.URL+"/api/auth/me", token, nil, &me)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: status %d", resp.StatusCode)
	}
	if me.ID != user.ID || me.Email != user.Email || me.Role != user.Role {
		t.Fatalf("me = %+v, want %+v", me, user)
	}
}

func TestAuthRequired(t *testing.T) {
	ts := newTestServer(t)

	for _, token := range []string{"", "not-a-jwt"} {
		req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/students", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusUnauthorized {
			t.Fatalf("token %q: status %d, want 401", token, resp.StatusCode)
		}
	}
}

func TestStudentCRUD(t *testing.T) {
	ts := newTestServer(t)
	token, _ := login(t, ts, "admin@school.com", "password123")

	var all []domain.Student
	doJSON(t, http.MethodGet, ts.URL+"/api/students", token, nil, &all)
	if len(all) != 8 {
		t.Fatalf("seeded students = %d, want 8", len(all))
	}

	var c1 []domain.Student
	doJSON(t, http.MethodGet, ts.URL+"/api/students?classId=c1", token, nil, &c1)
	if len(c1) != 4 {
		t.Fatalf("class c1 students = %d, want 4", len(c1))
	}

	var created domain.Student
	resp := doJSON(t, http.MethodPost, ts.URL+"/api/students", token, studentRequest{
		Name: "New Kid", RollNumber: "9", Class: "c1", Section: "A",
	}, &created)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: status %d", resp.StatusCode)
	}
	if created.ID == "" {
		t.Fatal("create: missing id")
	}

	var updated domain.Student
	doJSON(t, http.MethodPut, ts.URL+"/api/students/"+created.ID, token, studentRequest{
		Name: "Renamed Kid", RollNumber: "9", Class: "c1", Section: "A",
	}, &updated)
	if updated.Name != "Renamed Kid" {
		t.Fatalf("update: name = %q", updated.Name)
	}

	resp = doJSON(t, http.MethodDelete, ts.URL+"/api/students/"+created.ID, token, nil, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	resp = doJSON(t, http.MethodGet, ts.URL+"/api/students/"+created.ID, token, nil, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete: status %d, want 404", resp.StatusCode)
	}
}

func TestMarkAttendanceUpserts(t *testing.T) {
	ts := newTestServer(t)
	token, _ := login(t, ts, "teacher@school.com", "password123")

	var students []domain.Student
	doJSON(t, http.MethodGet, ts.URL+"/api/students?classId=c1", token, nil, &students)
	st := students[0]
	date := time.Now().AddDate(0, 0, 1).Format(dateLayout)

	var first domain.AttendanceRecord
	doJSON(t, http.MethodPost, ts.URL+"/api/attendance", token, attendanceRequest{
		StudentID: st.ID, Date: date, Status: "absent",
	}, &first)

	var second domain.AttendanceRecord
	doJSON(t, http.MethodPost, ts.URL+"/api/attendance", token, attendanceRequest{
		StudentID: st.ID, Date: date, Status: "present",
	}, &second)

	if second.ID != first.ID {
		t.Fatalf("re-marking created a new record: %s vs %s", second.ID, first.ID)
	}
	if second.Status != domain.StatusPresent {
		t.Fatalf("status = %q, want present", second.Status)
	}

	var recs []domain.AttendanceRecord
	doJSON(t, http.MethodGet, ts.URL+"/api/attendance?studentId="+st.ID+"&date="+date, token, nil, &recs)
	if len(recs) != 1 {
		t.Fatalf("records for the day = %d, want 1", len(recs))
	}
}

func TestAttendanceValidation(t *testing.T) {
	ts := newTestServer(t)
	token, _ := login(t, ts, "teacher@school.com", "password123")

	resp := doJSON(t, http.MethodPost, ts.URL+"/api/attendance", token, attendanceRequest{
		StudentID: "whatever", Date: "2026-01-01", Status: "vacationing",
	}, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad status value: status %d, want 400", resp.StatusCode)
	}
}

func TestClassStats(t *testing.T) {
	ts := newTestServer(t)
	token, _ := login(t, ts, "admin@school.com", "password123")

	var stats domain.AttendanceStats
	doJSON(t, http.MethodGet, ts.URL+"/api/attendance/stats/c1", token, nil, &stats)
	if stats.TotalStudents != 4 {
		t.Fatalf("totalStudents = %d, want 4", stats.TotalStudents)
	}
	marked := stats.PresentToday + stats.AbsentToday + stats.LateToday + stats.HalfDayToday + stats.LeaveToday
	if marked != 4 {
		t.Fatalf("marked today = %d, want 4", marked)
	}
}

func TestLeaveDecisionRequiresStaff(t *testing.T) {
	ts := newTestServer(t)
	studentToken, _ := login(t, ts, "student@school.com", "password123")
	adminToken, admin := login(t, ts, "admin@school.com", "password123")

	var pending []domain.LeaveApplication
	doJSON(t, http.MethodGet, ts.URL+"/api/leaves?status=pending", adminToken, nil, &pending)
	if len(pending) == 0 {
		t.Fatal("expected a seeded pending leave")
	}
	id := pending[0].ID

	resp := doJSON(t, http.MethodPut, ts.URL+"/api/leaves/"+id+"/approve", studentToken, nil, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("student approving: status %d, want 403", resp.StatusCode)
	}

	var approved domain.LeaveApplication
	doJSON(t, http.MethodPut, ts.URL+"/api/leaves/"+id+"/approve", adminToken, nil, &approved)
	if approved.Status != domain.LeaveApproved {
		t.Fatalf("status = %q, want approved", approved.Status)
	}
	if approved.ApprovedBy != admin.ID {
		t.Fatalf("approvedBy = %q, want %q", approved.ApprovedBy, admin.ID)
	}
}

func TestReports(t *testing.T) {
	ts := newTestServer(t)
	token, _ := login(t, ts, "admin@school.com", "password123")

	today := time.Now().Format(dateLayout)
	var daily []domain.ReportRow
	doJSON(t, http.MethodGet, ts.URL+"/api/reports/daily?classId=c1&date="+today, token, nil, &daily)
	if len(daily) != 4 {
		t.Fatalf("daily rows = %d, want 4", len(daily))
	}
	for _, row := range daily {
		if row.TotalDays != 1 {
			t.Fatalf("%s: totalDays = %d, want 1", row.StudentName, row.TotalDays)
		}
	}

	start := time.Now().AddDate(0, 0, -6).Format(dateLayout)
	var weekly []domain.ReportRow
	doJSON(t, http.MethodGet, ts.URL+"/api/reports/weekly?classId=c1&startDate="+start, token, nil, &weekly)
	if len(weekly) != 4 {
		t.Fatalf("weekly rows = %d, want 4", len(weekly))
	}
	for _, row := range weekly {
		if row.TotalDays != 7 {
			t.Fatalf("%s: totalDays = %d, want 7", row.StudentName, row.TotalDays)
		}
		if row.AttendancePercentage <= 0 {
			t.Fatalf("%s: percentage = %v", row.StudentName, row.AttendancePercentage)
		}
	}

	resp := doJSON(t, http.MethodGet, ts.URL+"/api/reports/monthly?classId=c1&month=nope", token, nil, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad month: status %d, want 400", resp.StatusCode)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	user := domain.User{ID: "42", Email: "x@school.com", Name: "X", Role: domain.RoleTeacher, SchoolID: "1"}
	tok, err := issueToken(testSecret, user)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	got, err := parseToken(testSecret, tok)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got != user {
		t.Fatalf("got %+v, want %+v", got, user)
	}
	if _, err := parseToken("other-secret", tok); err == nil {
		t.Fatal("expected signature verification to fail")
	}
}
