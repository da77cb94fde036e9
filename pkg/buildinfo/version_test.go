package buildinfo

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	got := Get()
	if got.Service != Service || got.Version != Version || got.Commit != Commit || got.Date != Date {
		t.Errorf("Get() = %+v, want package variables", got)
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q, want version line first", tmpl)
	}
	if !strings.Contains(String(), "commit: "+Commit) {
		t.Errorf("String() = %q, want commit line", String())
	}
}
