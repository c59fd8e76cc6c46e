package client

import (
	"context"
	"net/http"
	"net/url"

	adminDTO "shkola_backend/internals/features/admins/dto"
	attendanceDTO "shkola_backend/internals/features/attendance/dto"
	classDTO "shkola_backend/internals/features/classes/dto"
	eventDTO "shkola_backend/internals/features/events/dto"
	gradeDTO "shkola_backend/internals/features/grades/dto"
	scheduleDTO "shkola_backend/internals/features/schedules/dto"
	studentDTO "shkola_backend/internals/features/students/dto"
	teacherDTO "shkola_backend/internals/features/teachers/dto"
)

// Типы ответов совпадают с серверными DTO.
type (
	Admin      = adminDTO.AdminResponse
	Teacher    = teacherDTO.TeacherResponse
	Student    = studentDTO.StudentResponse
	Class      = classDTO.ClassResponse
	Schedule   = scheduleDTO.ScheduleResponse
	Grade      = gradeDTO.GradeResponse
	Event      = eventDTO.EventResponse
	Attendance = attendanceDTO.AttendanceResponse
)

// LoginResult — ответ /login: токен и идентификатор принципала.
type LoginResult struct {
	Token     string `json:"token"`
	AdminID   uint   `json:"adminId,omitempty"`
	TeacherID uint   `json:"teacherId,omitempty"`
	StudentID uint   `json:"studentId,omitempty"`
	Role      string `json:"role"`
}

func (c *Client) login(ctx context.Context, path, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, path, nil, body, &out); err != nil {
		return nil, err
	}
	c.Token = out.Token
	return &out, nil
}

// LoginAdmin авторизует администратора и запоминает токен в клиенте.
func (c *Client) LoginAdmin(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, "/api/admins/login", email, password)
}

func (c *Client) LoginTeacher(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, "/api/teachers/login", email, password)
}

func (c *Client) LoginStudent(ctx context.Context, email, password string) (*LoginResult, error) {
	return c.login(ctx, "/api/students/login", email, password)
}

/* ================= Admins ================= */

func (c *Client) RegisterAdmin(ctx context.Context, req *adminDTO.RegisterAdminRequest) (*Admin, error) {
	return createOne[Admin](ctx, c, "/api/admins/registration", req)
}

func (c *Client) GetAdmin(ctx context.Context, id uint) (*Admin, error) {
	return getOne[Admin](ctx, c, "/api/admins", id)
}

func (c *Client) ListAdmins(ctx context.Context, query url.Values) (*ListEnvelope[Admin], error) {
	return list[Admin](ctx, c, "/api/admins", query)
}

func (c *Client) UpdateAdmin(ctx context.Context, id uint, req *adminDTO.UpdateAdminRequest) (*Admin, error) {
	return updateOne[Admin](ctx, c, "/api/admins", id, req)
}

func (c *Client) DeleteAdmin(ctx context.Context, id uint) error {
	return deleteOne(ctx, c, "/api/admins", id)
}

/* ================= Teachers ================= */

func (c *Client) RegisterTeacher(ctx context.Context, req *teacherDTO.RegisterTeacherRequest) (*Teacher, error) {
	return createOne[Teacher](ctx, c, "/api/teachers/registration", req)
}

func (c *Client) GetTeacher(ctx context.Context, id uint) (*Teacher, error) {
	return getOne[Teacher](ctx, c, "/api/teachers", id)
}

func (c *Client) ListTeachers(ctx context.Context, query url.Values) (*ListEnvelope[Teacher], error) {
	return list[Teacher](ctx, c, "/api/teachers", query)
}

func (c *Client) UpdateTeacher(ctx context.Context, id uint, req *teacherDTO.UpdateTeacherRequest) (*Teacher, error) {
	return updateOne[Teacher](ctx, c, "/api/teachers", id, req)
}

func (c *Client) DeleteTeacher(ctx context.Context, id uint) error {
	return deleteOne(ctx, c, "/api/teachers", id)
}

/* ================= Students ================= */

func (c *Client) RegisterStudent(ctx context.Context, req *studentDTO.RegisterStudentRequest) (*Student, error) {
	return createOne[Student](ctx, c, "/api/students/registration", req)
}

func (c *Client) GetStudent(ctx context.Context, id uint) (*Student, error) {
	return getOne[Student](ctx, c, "/api/students", id)
}

func (c *Client) ListStudents(ctx context.Context, query url.Values) (*ListEnvelope[Student], error) {
	return list[Student](ctx, c, "/api/students", query)
}

func (c *Client) UpdateStudent(ctx context.Context, id uint, req *studentDTO.UpdateStudentRequest) (*Student, error) {
	return updateOne[Student](ctx, c, "/api/students", id, req)
}

func (c *Client) DeleteStudent(ctx context.Context, id uint) error {
	return deleteOne(ctx, c, "/api/students", id)
}

/* ================= Classes ================= */

func (c *Client) CreateClass(ctx context.Context, req *classDTO.CreateClassRequest) (*Class, error) {
	return createOne[Class](ctx, c, "/api/classes", req)
}

func (c *Client) GetClass(ctx context.Context, id uint) (*Class, error) {
	return getOne[Class](ctx, c, "/api/classes", id)
}

func (c *Client) ListClasses(ctx context.Context, query url.Values) (*ListEnvelope[Class], error) {
	return list[Class](ctx, c, "/api/classes", query)
}

func (c *Client) UpdateClass(ctx context.Context, id uint, req *classDTO.UpdateClassRequest) (*Class, error) {
	return updateOne[Class](ctx, c, "/api/classes", id, req)
}

func (c *Client) DeleteClass(ctx context.Context, id uint) error {
	return deleteOne(ctx, c, "/api/classes", id)
}

/* ================= Schedules ================= */

func (c *Client) CreateSchedule(ctx context.Context, req *scheduleDTO.CreateScheduleRequest) (*Schedule, error) {
	return createOne[Schedule](ctx, c, "/api/schedules", req)
}

func (c *Client) GetSchedule(ctx context.Context, id uint) (*Schedule, error) {
	return getOne[Schedule](ctx, c, "/api/schedules", id)
}

func (c *Client) ListSchedules(ctx context.Context, query url.Values) (*ListEnvelope[Schedule], error) {
	return list[Schedule](ctx, c, "/api/schedules", query)
}

func (c *Client) UpdateSchedule(ctx context.Context, id uint, req *scheduleDTO.UpdateScheduleRequest) (*Schedule, error) {
	return updateOne[Schedule](ctx, c, "/api/schedules", id, req)
}

func (c *Client) DeleteSchedule(ctx context.Context, id uint) error {
	return deleteOne(ctx, c, "/api/schedules", id)
}

/* ================= Grades ================= */

func (c *Client) CreateGrade(ctx context.Context, req *gradeDTO.CreateGradeRequest) (*Grade, error) {
	return createOne[Grade](ctx, c, "/api/grades", req)
}

func (c *Client) GetGrade(ctx context.Context, id uint) (*Grade, error) {
	return getOne[Grade](ctx, c, "/api/grades", id)
}

func (c *Client) ListGrades(ctx context.Context, query url.Values) (*ListEnvelope[Grade], error) {
	return list[Grade](ctx, c, "/api/grades", query)
}

func (c *Client) UpdateGrade(ctx context.Context, id uint, req *gradeDTO.UpdateGradeRequest) (*Grade, error) {
	return updateOne[Grade](ctx, c, "/api/grades", id, req)
}

func (c *Client) DeleteGrade(ctx context.Context, id uint) error {
	return deleteOne(ctx, c, "/api/grades", id)
}

/* ================= Events ================= */

func (c *Client) CreateEvent(ctx context.Context, req *eventDTO.CreateEventRequest) (*Event, error) {
	return createOne[Event](ctx, c, "/api/events", req)
}

func (c *Client) GetEvent(ctx context.Context, id uint) (*Event, error) {
	return getOne[Event](ctx, c, "/api/events", id)
}

func (c *Client) ListEvents(ctx context.Context, query url.Values) (*ListEnvelope[Event], error) {
	return list[Event](ctx, c, "/api/events", query)
}

func (c *Client) UpdateEvent(ctx context.Context, id uint, req *eventDTO.UpdateEventRequest) (*Event, error) {
	return updateOne[Event](ctx, c, "/api/events", id, req)
}

func (c *Client) DeleteEvent(ctx context.Context, id uint) error {
	return deleteOne(ctx, c, "/api/events", id)
}

/* ================= Attendance ================= */

func (c *Client) CreateAttendance(ctx context.Context, req *attendanceDTO.CreateAttendanceRequest) (*Attendance, error) {
	return createOne[Attendance](ctx, c, "/api/attendance", req)
}

func (c *Client) GetAttendance(ctx context.Context, id uint) (*Attendance, error) {
	return getOne[Attendance](ctx, c, "/api/attendance", id)
}

func (c *Client) ListAttendance(ctx context.Context, query url.Values) (*ListEnvelope[Attendance], error) {
	return list[Attendance](ctx, c, "/api/attendance", query)
}

func (c *Client) UpdateAttendance(ctx context.Context, id uint, req *attendanceDTO.UpdateAttendanceRequest) (*Attendance, error) {
	return updateOne[Attendance](ctx, c, "/api/attendance", id, req)
}

func (c *Client) DeleteAttendance(ctx context.Context, id uint) error {
	return deleteOne(ctx, c, "/api/attendance", id)
}
