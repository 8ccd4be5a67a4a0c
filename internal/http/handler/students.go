package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studentsdemo/internal/model"
	"studentsdemo/internal/service"
)

// StudentsResponse carries a list of students.
type StudentsResponse struct {
	Success  bool            `json:"success"`
	Students []model.Student `json:"students"`
	Count    int             `json:"count"`
}

// CreateStudentResponse is returned after an insert.
type CreateStudentResponse struct {
	Success    bool          `json:"success"`
	Message    string        `json:"message"`
	InsertedID string        `json:"insertedId"`
	Student    model.Student `json:"student"`
}

// UpdateStudentResponse is returned after a partial update.
type UpdateStudentResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// DeleteResponse is returned by both delete endpoints.
type DeleteResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// ExportResponse is returned after a snapshot upload.
type ExportResponse struct {
	Success bool `json:"success"`
	service.ExportResult
}

var errInvalidPayload = errors.New("invalid JSON payload")

// parseBody decodes a JSON body when one was sent. An empty body leaves dst untouched.
func parseBody(c *fiber.Ctx, dst any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(dst); err != nil {
		return errInvalidPayload
	}
	return nil
}

// Stats godoc
// @Summary Collection statistics
// @Tags students
// @Produce json
// @Success 200 {object} service.Stats
// @Failure 500 {object} errorPayload
// @Router /api/stats [get]
func Stats(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(st)
	}
}

// ListStudents godoc
// @Summary List students, newest first
// @Tags students
// @Produce json
// @Success 200 {object} StudentsResponse
// @Failure 500 {object} errorPayload
// @Router /api/students [get]
func ListStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		students, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(StudentsResponse{Success: true, Students: students, Count: len(students)})
	}
}

// CreateStudent godoc
// @Summary Add a student
// @Tags students
// @Accept json
// @Produce json
// @Param student body service.CreateStudentRequest true "Student (name, age and major are required)"
// @Success 201 {object} CreateStudentResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/students [post]
func CreateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.CreateStudentRequest
		if err := parseBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAYLOAD", err.Error())
		}

		res, err := svc.Create(c.UserContext(), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(CreateStudentResponse{
			Success:    true,
			Message:    "Student added successfully",
			InsertedID: res.InsertedID.Hex(),
			Student:    res.Student,
		})
	}
}

// UpdateStudent godoc
// @Summary Partially update a student
// @Description Unknown ids succeed with zero counts.
// @Tags students
// @Accept json
// @Produce json
// @Param id path string true "Student ObjectID"
// @Param student body service.UpdateStudentRequest true "Fields to change"
// @Success 200 {object} UpdateStudentResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/students/{id} [put]
func UpdateStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.UpdateStudentRequest
		if err := parseBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAYLOAD", err.Error())
		}

		res, err := svc.Update(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(UpdateStudentResponse{
			Success:       true,
			Message:       "Student updated successfully",
			MatchedCount:  res.MatchedCount,
			ModifiedCount: res.ModifiedCount,
		})
	}
}

// DeleteStudent godoc
// @Summary Delete a student
// @Description Unknown ids succeed with deletedCount 0.
// @Tags students
// @Produce json
// @Param id path string true "Student ObjectID"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/students/{id} [delete]
func DeleteStudent(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.Delete(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(DeleteResponse{Success: true, Message: "Student deleted successfully", DeletedCount: n})
	}
}

// SearchStudents godoc
// @Summary Search students
// @Description major, minGpa and maxAge are optional and combined with AND.
// @Tags students
// @Accept json
// @Produce json
// @Param search body service.SearchRequest true "Search query"
// @Success 200 {object} StudentsResponse
// @Failure 400 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/students/search [post]
func SearchStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req service.SearchRequest
		if err := parseBody(c, &req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_PAYLOAD", err.Error())
		}

		students, err := svc.Search(c.UserContext(), req.Query)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(StudentsResponse{Success: true, Students: students, Count: len(students)})
	}
}

// DeleteAllStudents godoc
// @Summary Delete every student
// @Tags students
// @Produce json
// @Success 200 {object} DeleteResponse
// @Failure 500 {object} errorPayload
// @Router /api/students [delete]
func DeleteAllStudents(svc service.StudentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := svc.DeleteAll(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(DeleteResponse{Success: true, Message: "All students cleared", DeletedCount: n})
	}
}

// ExportStudents godoc
// @Summary Export the collection to object storage
// @Description Uploads a JSON snapshot and returns a presigned download URL.
// @Tags students
// @Produce json
// @Success 200 {object} ExportResponse
// @Failure 503 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /api/students/export [post]
func ExportStudents(svc service.ExportService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Export(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(ExportResponse{Success: true, ExportResult: *res})
	}
}
