package model

// Tier bounds of the career ladder.
const (
	MinTier = 1
	MaxTier = 5
)

// NeutralTrust is the club trust a scout starts with at a new employer.
const NeutralTrust = 50.0

// Skills are the scout's attributes on a 1–20 scale.
type Skills struct {
	Judgement    int `koanf:"judgement"`
	Networking   int `koanf:"networking"`
	Persuasion   int `koanf:"persuasion"`
	DataLiteracy int `koanf:"data_literacy"`
	Potential    int `koanf:"potential"`
}

// Scout is the player-controlled agent. It is a value: every engine
// operation returns an updated copy and leaves its argument untouched.
type Scout struct {
	ID                      string
	Name                    string
	Reputation              float64
	Tier                    int
	Path                    CareerPath
	Specialization          Specialization
	SecondarySpecialization Specialization // empty until unlocked
	Skills                  Skills
	Fatigue                 float64
	EmployerClubID          string // empty when unemployed or independent
	Salary                  int
	Balance                 int
	HomeCountry             string

	ReportsSubmitted int
	SuccessfulFinds  int
	SeasonReports    int
	SeasonSignings   int
	ClubTrust        float64

	RetainerContracts int
	Employees         int
	EnrolledCourses   []string
	CompletedCourses  []string
}

// Clone returns a deep copy of s.
func (s Scout) Clone() Scout {
	s.EnrolledCourses = append([]string(nil), s.EnrolledCourses...)
	s.CompletedCourses = append([]string(nil), s.CompletedCourses...)
	return s
}

// Employed reports whether the scout currently works for a club.
func (s Scout) Employed() bool { return s.EmployerClubID != "" }

// Specializations returns the primary focus followed by the secondary one,
// if unlocked.
func (s Scout) Specializations() []Specialization {
	if s.SecondarySpecialization == "" {
		return []Specialization{s.Specialization}
	}
	return []Specialization{s.Specialization, s.SecondarySpecialization}
}

// HasSpecialization reports whether spec is the scout's primary or
// secondary focus.
func (s Scout) HasSpecialization(spec Specialization) bool {
	return spec != "" && (s.Specialization == spec || s.SecondarySpecialization == spec)
}

// Report is a scouting report submitted by the player scout.
type Report struct {
	ID            string
	ScoutID       string
	PlayerID      string
	Season        int
	Week          int
	Quality       int // 1–100
	Conviction    ConvictionLevel
	ClubResponse  ClubResponse
	DataPoints    int  // statistical metrics attached to the report
	SigningFailed bool // the signing was later written off
}

// Signed reports whether the club signed the reported player.
func (r Report) Signed() bool { return r.ClubResponse == ResponseSigned }

// SuccessfulSigning reports whether the club signed the player and the
// signing has not been written off.
func (r Report) SuccessfulSigning() bool { return r.Signed() && !r.SigningFailed }

// TablePound reports whether the report was filed at maximum conviction.
func (r Report) TablePound() bool { return r.Conviction == ConvictionTablePound }
