package memory

import "github.com/sbilibin2017/team-manager/internal/models"

// The copy functions below back every table. Besides detaching pointers they drop sub-microsecond
// precision from timestamps, so rows round the way a TIMESTAMPTZ column does.

func copyUser(u models.User) models.User {
	u.ProfilePicture = clone(u.ProfilePicture)
	u.Position = clone(u.Position)
	u.CreatedAt = models.Stamp(u.CreatedAt)
	return u
}

func copyAthlete(a models.Athlete) models.Athlete {
	a.Height = clone(a.Height)
	a.Weight = clone(a.Weight)
	a.SleepHours = clone(a.SleepHours)
	a.LastTraining = models.StampPtr(a.LastTraining)
	return a
}

func copyExercise(e models.Exercise) models.Exercise {
	e.Description = clone(e.Description)
	e.VideoURL = clone(e.VideoURL)
	if e.Metrics != nil {
		m := *e.Metrics
		m.Repetitions = clone(m.Repetitions)
		m.Duration = clone(m.Duration)
		m.Distance = clone(m.Distance)
		m.Accuracy = clone(m.Accuracy)
		m.Difficulty = clone(m.Difficulty)
		e.Metrics = &m
	}
	return e
}

func copySession(ts models.TrainingSession) models.TrainingSession {
	ts.Results.Repetitions = clone(ts.Results.Repetitions)
	ts.Results.Duration = clone(ts.Results.Duration)
	ts.Results.Distance = clone(ts.Results.Distance)
	ts.Results.Accuracy = clone(ts.Results.Accuracy)
	ts.CompletedAt = models.Stamp(ts.CompletedAt)
	return ts
}

func copyEvent(e models.Event) models.Event {
	e.Description = clone(e.Description)
	e.StartDate = models.Stamp(e.StartDate)
	e.EndDate = models.StampPtr(e.EndDate)
	return e
}

func copyGalleryItem(g models.GalleryItem) models.GalleryItem {
	g.Description = clone(g.Description)
	g.UploadedAt = models.Stamp(g.UploadedAt)
	return g
}

func copyBestOfWeek(b models.BestOfWeek) models.BestOfWeek {
	b.Achievements.Shooting = clone(b.Achievements.Shooting)
	b.Achievements.Rebounds = clone(b.Achievements.Rebounds)
	b.Achievements.Assists = clone(b.Achievements.Assists)
	b.Achievements.Description = clone(b.Achievements.Description)
	b.WeekStart = models.Stamp(b.WeekStart)
	return b
}

func copyLiveStream(ls models.LiveStream) models.LiveStream {
	ls.Description = clone(ls.Description)
	ls.ScheduledFor = models.StampPtr(ls.ScheduledFor)
	return ls
}
