package record

// Patch is a partial update for a DailyEntry. Nil fields are left untouched
// by Merge, so a patch only ever overwrites what it explicitly sets.
type Patch struct {
	Pulse     *string
	BPSys     *string
	BPDia     *string
	Dizziness *bool
	Syncope   *bool
	Dyspnea   *bool
	Edema     *bool
	Bleeding  *bool
	Fatigue   *string
	Meds      *MedsPatch
	Notes     *string
}

// MedsPatch is a partial update for the medication sub-record.
type MedsPatch struct {
	AM *MorningPatch
	PM *EveningPatch
}

// MorningPatch is a partial update for the morning doses.
type MorningPatch struct {
	Multaq     *bool
	Edoxaban   *bool
	Bisoprolol *bool
}

// EveningPatch is a partial update for the evening dose.
type EveningPatch struct {
	Multaq *bool
}

// IsEmpty reports whether the patch sets no fields at all.
func (p Patch) IsEmpty() bool {
	return p.Pulse == nil && p.BPSys == nil && p.BPDia == nil &&
		p.Dizziness == nil && p.Syncope == nil && p.Dyspnea == nil &&
		p.Edema == nil && p.Bleeding == nil && p.Fatigue == nil &&
		p.Notes == nil && (p.Meds == nil || p.Meds.isEmpty())
}

func (p MedsPatch) isEmpty() bool {
	if p.AM != nil && (p.AM.Multaq != nil || p.AM.Edoxaban != nil || p.AM.Bisoprolol != nil) {
		return false
	}
	if p.PM != nil && p.PM.Multaq != nil {
		return false
	}
	return true
}

// Merge returns e with the patch applied. Merging happens per nesting level:
// a patch that sets one morning dose leaves the sibling doses intact.
func Merge(e DailyEntry, p Patch) DailyEntry {
	if p.Pulse != nil {
		e.Pulse = *p.Pulse
	}
	if p.BPSys != nil {
		e.BPSys = *p.BPSys
	}
	if p.BPDia != nil {
		e.BPDia = *p.BPDia
	}
	if p.Dizziness != nil {
		e.Dizziness = *p.Dizziness
	}
	if p.Syncope != nil {
		e.Syncope = *p.Syncope
	}
	if p.Dyspnea != nil {
		e.Dyspnea = *p.Dyspnea
	}
	if p.Edema != nil {
		e.Edema = *p.Edema
	}
	if p.Bleeding != nil {
		e.Bleeding = *p.Bleeding
	}
	if p.Fatigue != nil {
		e.Fatigue = *p.Fatigue
	}
	if p.Notes != nil {
		e.Notes = *p.Notes
	}
	if p.Meds != nil {
		e.Meds = mergeMeds(e.Meds, *p.Meds)
	}
	return e
}

func mergeMeds(m Meds, p MedsPatch) Meds {
	if p.AM != nil {
		m.AM = mergeMorning(m.AM, *p.AM)
	}
	if p.PM != nil {
		m.PM = mergeEvening(m.PM, *p.PM)
	}
	return m
}

func mergeMorning(d MorningDoses, p MorningPatch) MorningDoses {
	if p.Multaq != nil {
		d.Multaq = *p.Multaq
	}
	if p.Edoxaban != nil {
		d.Edoxaban = *p.Edoxaban
	}
	if p.Bisoprolol != nil {
		d.Bisoprolol = *p.Bisoprolol
	}
	return d
}

func mergeEvening(d EveningDoses, p EveningPatch) EveningDoses {
	if p.Multaq != nil {
		d.Multaq = *p.Multaq
	}
	return d
}
