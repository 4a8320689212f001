package models

import "testing"

func TestParseTaskPriority(t *testing.T) {
	cases := []struct {
		in   string
		want TaskPriority
	}{
		{"low", PriorityLow},
		{"LOW", PriorityLow},
		{"High", PriorityHigh},
		{"medium", PriorityMedium},
		{"", PriorityMedium},
		{"urgent", PriorityMedium}, // unrecognized falls back silently
	}

	for _, tc := range cases {
		if got := ParseTaskPriority(tc.in); got != tc.want {
			t.Errorf("ParseTaskPriority(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseTaskStatus(t *testing.T) {
	cases := []struct {
		in   string
		want TaskStatus
	}{
		{"todo", StatusTodo},
		{"TODO", StatusTodo},
		{"in-progress", StatusInProgress},
		{"IN_PROGRESS", StatusInProgress},
		{"done", StatusDone},
		{"", ""},
		{"blocked", ""}, // unrecognized becomes unset
	}

	for _, tc := range cases {
		if got := ParseTaskStatus(tc.in); got != tc.want {
			t.Errorf("ParseTaskStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseChatType(t *testing.T) {
	if got := ParseChatType("direct"); got != ChatDirect {
		t.Errorf("ParseChatType(direct) = %q", got)
	}
	if got := ParseChatType("DIRECT"); got != ChatDirect {
		t.Errorf("ParseChatType(DIRECT) = %q", got)
	}
	if got := ParseChatType("anything"); got != ChatGroup {
		t.Errorf("ParseChatType(anything) = %q, want group", got)
	}
	if got := ParseChatType(""); got != ChatGroup {
		t.Errorf("ParseChatType(\"\") = %q, want group", got)
	}
}

func TestDefaultAvatarURL(t *testing.T) {
	if got := DefaultAvatarURL("Jane Doe"); got != "https://ui-avatars.com/api/?name=Jane%20Doe&background=0D8ABC&color=fff" {
		t.Errorf("unexpected avatar url: %s", got)
	}
	if got := DefaultAvatarURL("  "); got != "" {
		t.Errorf("blank name should yield no avatar, got %s", got)
	}
}
