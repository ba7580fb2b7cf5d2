package models

// ExerciseCategory groups exercises in the library.
type ExerciseCategory string

// Supported exercise categories
const (
	CategoryBasketball ExerciseCategory = "basketball"
	CategoryAerobic    ExerciseCategory = "aerobic"
	CategoryStrength   ExerciseCategory = "strength"
)

// Valid reports whether c is a known category.
func (c ExerciseCategory) Valid() bool {
	switch c {
	case CategoryBasketball, CategoryAerobic, CategoryStrength:
		return true
	}
	return false
}

// ExerciseMetrics holds the sparse target metrics of an exercise.
type ExerciseMetrics struct {
	Repetitions *int     `json:"repetitions,omitempty"`
	Duration    *int     `json:"duration,omitempty"` // Seconds
	Distance    *float64 `json:"distance,omitempty"` // Meters
	Accuracy    *float64 `json:"accuracy,omitempty"` // Percent
	Difficulty  *string  `json:"difficulty,omitempty"`
}

// Exercise is a single entry in the training library.
type Exercise struct {
	ID          string           `json:"id" db:"id"`
	Name        string           `json:"name" db:"name"`
	Description *string          `json:"description" db:"description"`
	Category    ExerciseCategory `json:"category" db:"category"`
	VideoURL    *string          `json:"videoUrl" db:"video_url"`
	Metrics     *ExerciseMetrics `json:"metrics" db:"metrics"`
	CreatedBy   string           `json:"createdBy" db:"created_by"` // User id
}

// NewExercise holds the fields needed to create an exercise.
type NewExercise struct {
	Name        string           `json:"name" validate:"required"`
	Description *string          `json:"description"`
	Category    ExerciseCategory `json:"category" validate:"required,oneof=basketball aerobic strength"`
	VideoURL    *string          `json:"videoUrl" validate:"omitempty,url"`
	Metrics     *ExerciseMetrics `json:"metrics"`
	CreatedBy   string           `json:"createdBy" validate:"required"`
}

// ExercisePatch is a partial exercise update.
type ExercisePatch struct {
	Name        *string                   `json:"name,omitempty" validate:"omitempty,min=1"`
	Description Nullable[string]          `json:"description,omitzero"`
	Category    *ExerciseCategory         `json:"category,omitempty" validate:"omitempty,oneof=basketball aerobic strength"`
	VideoURL    Nullable[string]          `json:"videoUrl,omitzero"`
	Metrics     Nullable[ExerciseMetrics] `json:"metrics,omitzero"`
}

// Apply merges the supplied patch fields onto e.
func (e *Exercise) Apply(p ExercisePatch) {
	assign(&e.Name, p.Name)
	p.Description.applyTo(&e.Description)
	assign(&e.Category, p.Category)
	p.VideoURL.applyTo(&e.VideoURL)
	p.Metrics.applyTo(&e.Metrics)
}
