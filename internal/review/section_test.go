package review

import (
	"strings"
	"testing"
)

func TestAppendSection(t *testing.T) {
	got := AppendSection("Fixes #12", "Looks good.")
	want := "Fixes #12\n\n## AI Review\nLooks good."
	if got != want {
		t.Errorf("AppendSection = %q, want %q", got, want)
	}
}

func TestAppendSection_EmptyDescription(t *testing.T) {
	got := AppendSection("", "Looks good.")
	if got != Section("Looks good.") {
		t.Errorf("AppendSection = %q", got)
	}
}

func TestAppendSection_Stacks(t *testing.T) {
	once := AppendSection("body", "s")
	twice := AppendSection(once, "s")
	if strings.Count(twice, SectionHeading) != 2 {
		t.Errorf("expected two sections, got %q", twice)
	}
	if twice != "body"+Section("s")+Section("s") {
		t.Errorf("twice = %q", twice)
	}
}
