package handlers

import (
	"context"
	"net/http"

	"learning-service/internal/service"

	"github.com/gin-gonic/gin"
)

// CourseHandler serves the catalog plus the per-user progress operations
// attached to courses: lesson completion, quiz submission and certificates.
type CourseHandler struct {
	Courses  *service.CourseService
	Progress *service.ProgressService
}

func NewCourseHandler(courses *service.CourseService, progress *service.ProgressService) *CourseHandler {
	return &CourseHandler{Courses: courses, Progress: progress}
}

func (h *CourseHandler) ListCourses(c *gin.Context) {
	courses, err := h.Courses.ListCourses(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courses"})
		return
	}
	c.JSON(http.StatusOK, courses)
}

func (h *CourseHandler) GetCourse(c *gin.Context) {
	course, err := h.Courses.GetCourse(context.Background(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) CreateCourse(c *gin.Context) {
	var req struct {
		Title    string `json:"title" binding:"required"`
		Category string `json:"category" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and category are required"})
		return
	}
	course, err := h.Courses.CreateCourse(context.Background(), req.Title, req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	var req struct {
		Title    string `json:"title"`
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	course, err := h.Courses.UpdateCourse(context.Background(), c.Param("id"), req.Title, req.Category)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) DeleteCourse(c *gin.Context) {
	if err := h.Courses.DeleteCourse(context.Background(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Course deleted successfully"})
}

func (h *CourseHandler) AddModule(c *gin.Context) {
	var req struct {
		Title string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Module title is required"})
		return
	}
	module, err := h.Courses.AddModule(context.Background(), c.Param("id"), req.Title)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, module)
}

func (h *CourseHandler) UpdateModule(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	module, err := h.Courses.UpdateModule(context.Background(), c.Param("id"), c.Param("moduleId"), req.Title)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *CourseHandler) DeleteModule(c *gin.Context) {
	if err := h.Courses.DeleteModule(context.Background(), c.Param("id"), c.Param("moduleId")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Module deleted successfully"})
}

func (h *CourseHandler) AddLesson(c *gin.Context) {
	var req service.LessonInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Type == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and type are required"})
		return
	}
	lesson, err := h.Courses.AddLesson(context.Background(), c.Param("id"), c.Param("moduleId"), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, lesson)
}

func (h *CourseHandler) UpdateLesson(c *gin.Context) {
	var req service.LessonInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lesson, err := h.Courses.UpdateLesson(context.Background(), c.Param("id"), c.Param("moduleId"), c.Param("lessonId"), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, lesson)
}

func (h *CourseHandler) DeleteLesson(c *gin.Context) {
	if err := h.Courses.DeleteLesson(context.Background(), c.Param("id"), c.Param("moduleId"), c.Param("lessonId")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lesson deleted successfully"})
}

// ToggleLesson flips a lesson's completion state for the calling user.
func (h *CourseHandler) ToggleLesson(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	result, err := h.Progress.ToggleLesson(context.Background(), userID, c.Param("id"), c.Param("lessonId"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// CompleteLesson explicitly sets a lesson's completion state. The body's
// completed flag defaults to true for older clients that never send it.
func (h *CourseHandler) CompleteLesson(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	req := struct {
		Completed *bool `json:"completed"`
	}{}
	_ = c.ShouldBindJSON(&req)
	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	entry, err := h.Progress.MarkLessonComplete(context.Background(), userID, c.Param("id"), c.Param("lessonId"), completed)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	message := "Lesson completed"
	if !completed {
		message = "Lesson uncompleted"
	}
	c.JSON(http.StatusOK, gin.H{
		"message":            message,
		"progress":           entry.Progress,
		"completedLessonIds": entry.CompletedLessonIDs,
	})
}

// UpdateProgress is the legacy progress-update path; same set semantics as
// CompleteLesson with the lesson id in the body.
func (h *CourseHandler) UpdateProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req struct {
		LessonID    string `json:"lessonId" binding:"required"`
		IsCompleted bool   `json:"isCompleted"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.Progress.MarkLessonComplete(context.Background(), userID, c.Param("id"), req.LessonID, req.IsCompleted)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CourseHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	var req struct {
		Answers map[string]int `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.Progress.SubmitQuiz(context.Background(), userID, c.Param("id"), c.Param("lessonId"), req.Answers)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CourseHandler) GetCertificate(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	cert, err := h.Progress.CourseCertificate(context.Background(), userID, c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cert)
}
