package constants

// Роли принципалов
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// Ключи claim'ов в JWT (ровно один на токен)
const (
	ClaimAdminID   = "adminId"
	ClaimTeacherID = "teacherId"
	ClaimStudentID = "studentId"
)

// Статусы посещаемости
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
	AttendanceExcused = "excused"
)

func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceAbsent, AttendanceExcused:
		return true
	}
	return false
}

// Типы организатора события
const (
	OrganizerAdmin   = "admin"
	OrganizerTeacher = "teacher"
)

func IsValidOrganizerType(s string) bool {
	return s == OrganizerAdmin || s == OrganizerTeacher
}
