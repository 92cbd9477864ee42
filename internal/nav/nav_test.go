package nav

import "testing"

func TestNavigate_ReturnsGoMsg(t *testing.T) {
	cmd := Navigate("/games/snake")
	if cmd == nil {
		t.Fatal("expected non-nil cmd")
	}
	msg, ok := cmd().(GoMsg)
	if !ok {
		t.Fatalf("expected GoMsg, got %T", cmd())
	}
	if msg.Path != "/games/snake" {
		t.Errorf("expected /games/snake, got %q", msg.Path)
	}
}

func TestNavigate_EmptyPathGoesHome(t *testing.T) {
	msg := Navigate("")().(GoMsg)
	if msg.Path != RouteHub {
		t.Errorf("expected hub root for empty path, got %q", msg.Path)
	}
}

func TestGameID(t *testing.T) {
	tests := []struct {
		path   string
		wantID string
		wantOK bool
	}{
		{"/games/snake", "snake", true},
		{"/games/2048", "2048", true},
		{"/games/", "", false},
		{"/games/a/b", "", false},
		{"/", "", false},
		{"", "", false},
		{"/settings", "", false},
	}
	for _, tt := range tests {
		id, ok := GameID(tt.path)
		if id != tt.wantID || ok != tt.wantOK {
			t.Errorf("GameID(%q) = (%q, %v), want (%q, %v)", tt.path, id, ok, tt.wantID, tt.wantOK)
		}
	}
}

func TestGamePath_RoundTrip(t *testing.T) {
	id, ok := GameID(GamePath("tetris"))
	if !ok || id != "tetris" {
		t.Errorf("round trip failed: got (%q, %v)", id, ok)
	}
}

func TestIsHub(t *testing.T) {
	if !IsHub("/") || !IsHub("") {
		t.Error("expected / and empty to be hub")
	}
	if IsHub("/games/snake") {
		t.Error("game path should not be hub")
	}
}
