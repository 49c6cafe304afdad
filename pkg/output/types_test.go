package output

import "testing"

func TestNewReport(t *testing.T) {
	report := createTestReport()

	if len(report.Groups) != 3 {
		t.Fatalf("len(Groups) = %d, want 3", len(report.Groups))
	}
	if report.Summary.TotalFailures != 5 {
		t.Errorf("TotalFailures = %d, want 5", report.Summary.TotalFailures)
	}
	if report.Summary.RecordsRead != 10 {
		t.Errorf("RecordsRead = %d, want 10", report.Summary.RecordsRead)
	}

	// Order is preserved from the result.
	if report.Groups[0].ServiceLabel() != "svc2" || report.Groups[0].Count != 3 {
		t.Errorf("Groups[0] = %+v", report.Groups[0])
	}
	if report.Groups[2].Service != nil {
		t.Errorf("Groups[2].Service = %q, want nil", *report.Groups[2].Service)
	}
	if report.Groups[2].ServiceLabel() != "<none>" {
		t.Errorf("ServiceLabel() = %q, want <none>", report.Groups[2].ServiceLabel())
	}
	if !report.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}
}

func TestNewReport_Empty(t *testing.T) {
	report := createEmptyReport()

	if report.HasFailures() {
		t.Error("HasFailures() = true, want false")
	}
	if report.Groups == nil {
		t.Error("Groups should be an empty slice, not nil")
	}
}

func TestNewFormatter(t *testing.T) {
	for _, name := range []string{"text", "json"} {
		f, err := NewFormatter(name, FormatOptions{})
		if err != nil {
			t.Fatalf("NewFormatter(%q) error = %v", name, err)
		}
		if f.Name() != name {
			t.Errorf("Name() = %q, want %q", f.Name(), name)
		}
	}

	if _, err := NewFormatter("xml", FormatOptions{}); err == nil {
		t.Error("NewFormatter(xml) expected error")
	}
}

func TestNewReport_Notice(t *testing.T) {
	if got := createEmptyReport().Notice; got != NoResultsMessage {
		t.Errorf("empty report Notice = %q, want %q", got, NoResultsMessage)
	}
	if got := createTestReport().Notice; got != "" {
		t.Errorf("non-empty report Notice = %q, want empty", got)
	}
}
