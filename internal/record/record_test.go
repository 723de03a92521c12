package record

import "testing"

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

func TestDefault(t *testing.T) {
	e := Default("2026-03-01")

	if e.Date != "2026-03-01" {
		t.Errorf("Date = %q, expected %q", e.Date, "2026-03-01")
	}
	if e.Pulse != "" || e.BPSys != "" || e.BPDia != "" {
		t.Error("expected empty vitals in default entry")
	}
	if e.Fatigue != FatigueNone {
		t.Errorf("Fatigue = %q, expected %q", e.Fatigue, FatigueNone)
	}
	if e.Dizziness || e.Syncope || e.Dyspnea || e.Edema || e.Bleeding {
		t.Error("expected all symptom flags false in default entry")
	}
	if e.Meds.AM.Multaq || e.Meds.AM.Edoxaban || e.Meds.AM.Bisoprolol || e.Meds.PM.Multaq {
		t.Error("expected all doses false in default entry")
	}
}

func TestParseVital(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   float64
		wantOK bool
	}{
		{"normal pulse", "72", 72, true},
		{"decimal value", "71.5", 71.5, true},
		{"empty is absent", "", 0, false},
		{"non-numeric is absent", "abc", 0, false},
		{"partially numeric is absent", "72x", 0, false},
		{"zero is treated as absent", "0", 0, false},
		{"negative parses as a value", "-1", -1, true},
		{"whitespace is absent", " 72", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseVital(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseVital(%q) ok = %v, expected %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ParseVital(%q) = %v, expected %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMerge_TopLevelFields(t *testing.T) {
	e := Default("2026-03-01")
	e.Pulse = "68"
	e.Notes = "felt fine"

	got := Merge(e, Patch{
		BPSys:    strPtr("128"),
		Bleeding: boolPtr(true),
	})

	if got.BPSys != "128" {
		t.Errorf("BPSys = %q, expected %q", got.BPSys, "128")
	}
	if !got.Bleeding {
		t.Error("Bleeding = false, expected true")
	}
	// Untouched fields survive.
	if got.Pulse != "68" {
		t.Errorf("Pulse = %q, expected %q (sibling field dropped)", got.Pulse, "68")
	}
	if got.Notes != "felt fine" {
		t.Errorf("Notes = %q, expected %q (sibling field dropped)", got.Notes, "felt fine")
	}
}

func TestMerge_PreservesSiblingDoses(t *testing.T) {
	e := Default("2026-03-01")
	e.Meds.AM.Edoxaban = true
	e.Meds.PM.Multaq = true

	got := Merge(e, Patch{
		Meds: &MedsPatch{AM: &MorningPatch{Multaq: boolPtr(true)}},
	})

	if !got.Meds.AM.Multaq {
		t.Error("AM.Multaq = false, expected true")
	}
	if !got.Meds.AM.Edoxaban {
		t.Error("AM.Edoxaban cleared by patching AM.Multaq")
	}
	if !got.Meds.PM.Multaq {
		t.Error("PM.Multaq cleared by patching AM.Multaq")
	}
}

func TestMerge_ClearsFieldExplicitly(t *testing.T) {
	e := Default("2026-03-01")
	e.Pulse = "72"
	e.Dizziness = true

	got := Merge(e, Patch{
		Pulse:     strPtr(""),
		Dizziness: boolPtr(false),
	})

	if got.Pulse != "" {
		t.Errorf("Pulse = %q, expected cleared", got.Pulse)
	}
	if got.Dizziness {
		t.Error("Dizziness = true, expected cleared")
	}
}

func TestMerge_EmptyPatchIsIdentity(t *testing.T) {
	e := Default("2026-03-01")
	e.Pulse = "72"
	e.Meds.AM.Bisoprolol = true

	got := Merge(e, Patch{})
	if got != e {
		t.Errorf("Merge with empty patch = %+v, expected %+v", got, e)
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	tests := []struct {
		name string
		p    Patch
		want bool
	}{
		{"empty patch", Patch{}, true},
		{"meds patch with no doses", Patch{Meds: &MedsPatch{}}, true},
		{"meds patch with empty AM", Patch{Meds: &MedsPatch{AM: &MorningPatch{}}}, true},
		{"pulse set", Patch{Pulse: strPtr("72")}, false},
		{"notes set to empty string", Patch{Notes: strPtr("")}, false},
		{"evening dose set", Patch{Meds: &MedsPatch{PM: &EveningPatch{Multaq: boolPtr(true)}}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestValidFatigue(t *testing.T) {
	for _, valid := range []string{FatigueNone, FatigueMild, FatigueSevere} {
		if !ValidFatigue(valid) {
			t.Errorf("ValidFatigue(%q) = false, expected true", valid)
		}
	}
	for _, invalid := range []string{"", "3", "severe", "-1"} {
		if ValidFatigue(invalid) {
			t.Errorf("ValidFatigue(%q) = true, expected false", invalid)
		}
	}
}

func TestFatigueLabel(t *testing.T) {
	if got := FatigueLabel(FatigueSevere); got != "severe" {
		t.Errorf("FatigueLabel(severe) = %q", got)
	}
	if got := FatigueLabel(FatigueMild); got != "mild" {
		t.Errorf("FatigueLabel(mild) = %q", got)
	}
	if got := FatigueLabel(FatigueNone); got != "none" {
		t.Errorf("FatigueLabel(none) = %q", got)
	}
}
