package notes

import (
	"reflect"
	"testing"
)

func TestSplitAssignee(t *testing.T) {
	lines := []string{
		"EventA - 00:30 - |cfff38bb9Runnz|r  {spell:111}  |c00ff0000Pv|r  {spell:222}  \n",
		"EventB - 01:00 - |c00ff0000Pv|r  {spell:333}  \n",
		"EventC - 01:30 - |cfff38bb9Runnz|r  {spell:444}  |cfff38bb9Runnz|r  {spell:555}  \n",
	}

	got := SplitAssignee(lines, "Runnz")
	want := []string{
		"EventA - 00:30 - |cfff38bb9Runnz|r  {spell:111}  ",
		"EventC - 01:30 - |cfff38bb9Runnz|r  {spell:444}  |cfff38bb9Runnz|r  {spell:555}  ",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitAssignee(Runnz) = %q, want %q", got, want)
	}
}

func TestSplitAssigneeNoMatches(t *testing.T) {
	lines := []string{
		"EventA - 00:30 - |c00ff0000Pv|r  {spell:222}  \n",
		"EventB - 01:00 - \n",
	}
	if got := SplitAssignee(lines, "Runnz"); len(got) != 0 {
		t.Errorf("SplitAssignee(absent) = %q, want none", got)
	}
}

func TestSplitAssigneeMalformedHeader(t *testing.T) {
	lines := []string{"|cfff38bb9Runnz|r  {spell:111}  \n"}
	got := SplitAssignee(lines, "Runnz")
	want := []string{PlaceholderHeader + "|cfff38bb9Runnz|r  {spell:111}  "}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitAssignee(malformed header) = %q, want %q", got, want)
	}
}
