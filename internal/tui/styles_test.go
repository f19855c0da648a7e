package tui

import (
	"strings"
	"testing"

	"github.com/rollcall-app/rollcall/pkg/domain"
)

func TestStatusBadgeText(t *testing.T) {
	for _, s := range domain.AttendanceStatuses {
		badge := StatusBadge(s)
		if !strings.Contains(badge, string(s)) {
			t.Errorf("badge for %q = %q", s, badge)
		}
	}
}

func TestStatusColorsCoverAllStatuses(t *testing.T) {
	for _, s := range domain.AttendanceStatuses {
		if _, ok := statusColors[s]; !ok {
			t.Errorf("no color for status %q", s)
		}
	}
}

func TestRoleColorsCoverAllRoles(t *testing.T) {
	for _, r := range []domain.Role{domain.RoleAdmin, domain.RoleTeacher, domain.RoleStudent} {
		if _, ok := roleColors[r]; !ok {
			t.Errorf("no color for role %q", r)
		}
	}
}

func TestPctStyleThresholds(t *testing.T) {
	if pctStyle(95).GetForeground() != okStyle.GetForeground() {
		t.Error("95%% should be ok-styled")
	}
	if pctStyle(80).GetForeground() != warnStyle.GetForeground() {
		t.Error("80%% should be warn-styled")
	}
	if pctStyle(50).GetForeground() != errorStyle.GetForeground() {
		t.Error("50%% should be error-styled")
	}
}

func TestShimmerLogoContainsLetters(t *testing.T) {
	out := renderShimmerLogo(0)
	for _, ch := range "ROLLCALL" {
		if !strings.ContainsRune(out, ch) {
			t.Errorf("logo missing %q", ch)
		}
	}
}

func TestHelpViewListsCommands(t *testing.T) {
	out := helpView()
	for _, cmd := range []string{"rollcall login", "rollcall logout", "rollcall demo"} {
		if !strings.Contains(out, cmd) {
			t.Errorf("help missing %q", cmd)
		}
	}
	if !strings.Contains(out, "password123") {
		t.Error("help should name the demo password")
	}
}
