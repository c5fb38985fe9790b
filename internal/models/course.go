package models

import "time"

const (
	ContentLesson  = "LESSON"
	ContentChapter = "CHAPTER"
	ContentQuiz    = "QUIZ"
)

type QuizQuestion struct {
	ID                 string   `bson:"id" json:"id"`
	Question           string   `bson:"question" json:"question"`
	Options            []string `bson:"options" json:"options"`
	CorrectAnswerIndex int      `bson:"correctAnswerIndex" json:"correctAnswerIndex"`
}

type LessonStep struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	IsCompleted bool   `bson:"isCompleted" json:"isCompleted"`
}

type Lesson struct {
	ID        string         `bson:"id" json:"id"`
	Title     string         `bson:"title" json:"title"`
	Type      string         `bson:"type" json:"type"`
	Duration  string         `bson:"duration,omitempty" json:"duration,omitempty"`
	Content   string         `bson:"content,omitempty" json:"content,omitempty"`
	Steps     []LessonStep   `bson:"steps" json:"steps"`
	Questions []QuizQuestion `bson:"questions" json:"questions"`
}

type CourseModule struct {
	ID      string   `bson:"id" json:"id"`
	Title   string   `bson:"title" json:"title"`
	Lessons []Lesson `bson:"lessons" json:"lessons"`
	IsOpen  bool     `bson:"isOpen" json:"isOpen"`
}

// Course is the catalog document. CourseID is the stable external
// identifier ("c1" style) used throughout the API; the Mongo _id is
// internal only.
type Course struct {
	ID        string         `bson:"_id,omitempty" json:"-"`
	CourseID  string         `bson:"id" json:"id"`
	Title     string         `bson:"title" json:"title"`
	Category  string         `bson:"category" json:"category"`
	Modules   []CourseModule `bson:"modules" json:"modules"`
	CreatedAt time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// AllLessons flattens every module's lessons in catalog order.
func (c *Course) AllLessons() []Lesson {
	var lessons []Lesson
	for _, m := range c.Modules {
		lessons = append(lessons, m.Lessons...)
	}
	return lessons
}

// LessonIDs returns the identifiers of every lesson across all modules.
func (c *Course) LessonIDs() []string {
	var ids []string
	for _, m := range c.Modules {
		for _, l := range m.Lessons {
			ids = append(ids, l.ID)
		}
	}
	return ids
}

// FindLesson returns the lesson with the given id, or nil.
func (c *Course) FindLesson(lessonID string) *Lesson {
	for i := range c.Modules {
		for j := range c.Modules[i].Lessons {
			if c.Modules[i].Lessons[j].ID == lessonID {
				return &c.Modules[i].Lessons[j]
			}
		}
	}
	return nil
}

// FindModule returns the module with the given id, or nil.
func (c *Course) FindModule(moduleID string) *CourseModule {
	for i := range c.Modules {
		if c.Modules[i].ID == moduleID {
			return &c.Modules[i]
		}
	}
	return nil
}
