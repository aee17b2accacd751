package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	AttendanceRoutes "vidyalaya_backend/internals/features/school/attendance/route"
	ClubRoutes "vidyalaya_backend/internals/features/school/clubs/route"
	CompetitionRoutes "vidyalaya_backend/internals/features/school/competitions/route"
	ExamRoutes "vidyalaya_backend/internals/features/school/exams/route"
	GradeRoutes "vidyalaya_backend/internals/features/school/grades/route"
	HouseRoutes "vidyalaya_backend/internals/features/school/houses/route"
	ParentRoutes "vidyalaya_backend/internals/features/school/parents/route"
	PrefectRoutes "vidyalaya_backend/internals/features/school/prefects/route"
	SectionRoutes "vidyalaya_backend/internals/features/school/sections/route"
	StudentRoutes "vidyalaya_backend/internals/features/school/students/route"
	TeacherRoutes "vidyalaya_backend/internals/features/school/teachers/route"
	UserRoutes "vidyalaya_backend/internals/features/users/user/route"
)

/* ===================== ADMIN ===================== */

func SchoolAdminRoutes(r fiber.Router, db *gorm.DB, cache *redis.Client) {
	GradeRoutes.GradeAdminRoutes(r, db)
	SectionRoutes.SectionAdminRoutes(r, db)
	StudentRoutes.StudentAdminRoutes(r, db)
	TeacherRoutes.TeacherAdminRoutes(r, db)
	ParentRoutes.ParentAdminRoutes(r, db)
	HouseRoutes.HouseAdminRoutes(r, db)
	ClubRoutes.ClubAdminRoutes(r, db)
	CompetitionRoutes.CompetitionAdminRoutes(r, db, cache)
	ExamRoutes.ExamAdminRoutes(r, db)
	AttendanceRoutes.AttendanceAdminRoutes(r, db)
	PrefectRoutes.PrefectAdminRoutes(r, db)
	UserRoutes.UserAdminRoutes(r, db)
}
