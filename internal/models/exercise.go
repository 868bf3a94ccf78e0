package models

// Exercise is a catalog entry. Name is the stable key used everywhere else.
type Exercise struct {
	ID       int64  `json:"id" toml:"id"`
	Name     string `json:"name" toml:"name"`
	BodyPart string `json:"body_part" toml:"body_part"`
}

// SessionSet is a set of the workout currently being recorded.
// ID is generated on creation and survives edits so the selection and
// timer bookkeeping can keep pointing at it.
type SessionSet struct {
	ID   string `json:"id" toml:"id"`
	Kg   int    `json:"kg" toml:"kg"`
	Reps int    `json:"reps" toml:"reps"`
	RIR  int    `json:"rir" toml:"rir"`
}

//
// For TOML parsing only
//

type ExerciseDefTOML struct {
	Name     string `toml:"name"`
	BodyPart string `toml:"body_part"`
}

type ExerciseImport struct {
	Exercises []ExerciseDefTOML `toml:"exercise"`
}
