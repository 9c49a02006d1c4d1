package students

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/xstrengthofonex/edustudio/app/fixtures"
	"github.com/xstrengthofonex/edustudio/app/views"
)

func SetupStudentsRoutes(app *fiber.App, store *fixtures.Store) {
	students := app.Group("/students")

	// Routes
	students.Get("/", StudentsPage(store))
	students.Get("/:id", StudentDetailPage(store))
	students.Get("/:id/attendance", StudentAttendancePage(store))
}

// StudentsPage lists every student with their status and class labels.
func StudentsPage(store *fixtures.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := views.BuildStudentListView(store.ListAllStudents())

		return c.Render("students/list", fiber.Map{
			"Title":       "Students - EduStudio",
			"CurrentPage": "students",
			"students":    rows,
		})
	}
}

// StudentDetailPage shows a single student's profile and details.
func StudentDetailPage(store *fixtures.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := store.FindStudentByID(c.Params("id"))
		if err != nil {
			if errors.Is(err, fixtures.ErrStudentNotFound) {
				return fiber.ErrNotFound
			}
			return err
		}

		return c.Render("students/detail", fiber.Map{
			"Title":       fmt.Sprintf("%s - EduStudio", student.Name),
			"CurrentPage": "students",
			"profile":     views.BuildStudentProfile(student),
			"detail":      views.BuildStudentDetail(time.Now(), student),
		})
	}
}

// StudentAttendancePage shows per-class attendance statistics for a
// single student.
func StudentAttendancePage(store *fixtures.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		student, err := store.FindStudentByID(c.Params("id"))
		if err != nil {
			if errors.Is(err, fixtures.ErrStudentNotFound) {
				return fiber.ErrNotFound
			}
			return err
		}

		return c.Render("students/attendance", fiber.Map{
			"Title":       fmt.Sprintf("%s - Attendance - EduStudio", student.Name),
			"CurrentPage": "students",
			"profile":     views.BuildStudentProfile(student),
			"records":     views.BuildAttendanceRecords(student),
			"today":       views.FormatJoinDate(time.Now()),
		})
	}
}
