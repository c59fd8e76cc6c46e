package seeds

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"shkola_backend/internals/constants"
	adminModel "shkola_backend/internals/features/admins/model"
	attendanceModel "shkola_backend/internals/features/attendance/model"
	classModel "shkola_backend/internals/features/classes/model"
	eventModel "shkola_backend/internals/features/events/model"
	gradeModel "shkola_backend/internals/features/grades/model"
	scheduleModel "shkola_backend/internals/features/schedules/model"
	studentModel "shkola_backend/internals/features/students/model"
	teacherModel "shkola_backend/internals/features/teachers/model"
	helper "shkola_backend/internals/helpers"
	"shkola_backend/internals/helpers/dbtime"
)

const demoPassword = "password123"

var subjects = []string{
	"Математика", "Русский язык", "Литература", "Физика", "Химия",
	"Биология", "История", "География", "Информатика", "Английский язык",
	"Физкультура", "Музыка", "ИЗО", "Обществознание", "Технология",
}

var firstNames = []string{
	"Иван", "Мария", "Алексей", "Ольга", "Дмитрий",
	"Елена", "Сергей", "Анна", "Павел", "Наталья",
	"Андрей", "Татьяна", "Михаил", "Юлия", "Николай",
}

var lastNames = []string{
	"Иванов", "Петрова", "Сидоров", "Кузнецова", "Смирнов",
	"Попова", "Васильев", "Соколова", "Михайлов", "Новикова",
	"Фёдоров", "Морозова", "Волков", "Алексеева", "Лебедев",
}

// Run наполняет пустую базу демо-данными. Повторный запуск пропускается.
func Run(db *gorm.DB) error {
	var existing int64
	if err := db.Model(&adminModel.AdminModel{}).Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		log.Println("🌱 Демо-данные уже есть, сидирование пропущено.")
		return nil
	}

	hash, err := helper.HashPassword(demoPassword)
	if err != nil {
		return err
	}

	log.Println("🌱 Сидирование демо-данных...")

	admins := make([]adminModel.AdminModel, 0, 15)
	for i := 0; i < 15; i++ {
		admins = append(admins, adminModel.AdminModel{
			FirstName: firstNames[i],
			LastName:  lastNames[i],
			Email:     fmt.Sprintf("admin%d@shkola.ru", i+1),
			Password:  hash,
		})
	}
	if err := db.Create(&admins).Error; err != nil {
		return err
	}

	teachers := make([]teacherModel.TeacherModel, 0, 15)
	for i := 0; i < 15; i++ {
		room := fmt.Sprintf("каб. %d", 100+i)
		teachers = append(teachers, teacherModel.TeacherModel{
			FirstName: firstNames[(i+3)%15],
			LastName:  lastNames[(i+3)%15],
			Email:     fmt.Sprintf("teacher%d@shkola.ru", i+1),
			Password:  hash,
			Room:      &room,
			Subject:   subjects[i],
		})
	}
	if err := db.Create(&teachers).Error; err != nil {
		return err
	}

	classes := make([]classModel.ClassModel, 0, 15)
	for i := 0; i < 15; i++ {
		classes = append(classes, classModel.ClassModel{
			Name:           fmt.Sprintf("%d%s", i%11+1, string(rune('А'+i%3))),
			ClassTeacherID: teachers[i].ID,
			AcademicYear:   "2025/2026",
		})
	}
	if err := db.Create(&classes).Error; err != nil {
		return err
	}

	students := make([]studentModel.StudentModel, 0, 15)
	for i := 0; i < 15; i++ {
		birth, _ := dbtime.ParseDate(fmt.Sprintf("20%02d-0%d-1%d", 10+i%5, i%9+1, i%9))
		contact := fmt.Sprintf("+7 900 000-00-%02d", i+1)
		students = append(students, studentModel.StudentModel{
			FirstName:     firstNames[(i+7)%15],
			LastName:      lastNames[(i+7)%15],
			Email:         fmt.Sprintf("student%d@shkola.ru", i+1),
			Password:      hash,
			BirthDate:     birth,
			ParentContact: &contact,
			ClassID:       classes[i%15].ID,
		})
	}
	if err := db.Create(&students).Error; err != nil {
		return err
	}

	schedules := make([]scheduleModel.ScheduleModel, 0, 15)
	for i := 0; i < 15; i++ {
		schedules = append(schedules, scheduleModel.ScheduleModel{
			ClassID:      classes[i].ID,
			TeacherID:    teachers[(i+1)%15].ID,
			DayOfWeek:    i%5 + 1,
			LessonNumber: i%6 + 1,
			Classroom:    fmt.Sprintf("каб. %d", 200+i),
		})
	}
	if err := db.Create(&schedules).Error; err != nil {
		return err
	}

	grades := make([]gradeModel.GradeModel, 0, 15)
	for i := 0; i < 15; i++ {
		date, _ := dbtime.ParseDate(fmt.Sprintf("2026-0%d-%02d", i%8+1, i%27+1))
		grades = append(grades, gradeModel.GradeModel{
			StudentID:  students[i].ID,
			TeacherID:  teachers[i].ID,
			GradeValue: float64(i%3 + 3),
			Date:       date,
		})
	}
	if err := db.Create(&grades).Error; err != nil {
		return err
	}

	events := make([]eventModel.EventModel, 0, 5)
	for i := 0; i < 5; i++ {
		desc := "Общешкольное мероприятие"
		ev := eventModel.EventModel{
			Title:       fmt.Sprintf("Школьное событие №%d", i+1),
			Description: &desc,
			EventDate:   time.Date(2026, time.Month(i+9), 10, 12, 0, 0, 0, time.UTC),
			Students:    students[i*3 : i*3+3],
			Teachers:    teachers[i*2 : i*2+2],
		}
		if i%2 == 0 {
			ev.SetOrganizer(eventModel.AdminOrganizer(admins[i].ID))
		} else {
			ev.SetOrganizer(eventModel.TeacherOrganizer(teachers[i].ID))
		}
		events = append(events, ev)
	}
	if err := db.Create(&events).Error; err != nil {
		return err
	}

	statuses := []string{constants.AttendancePresent, constants.AttendanceAbsent, constants.AttendanceExcused}
	marks := make([]attendanceModel.AttendanceModel, 0, 15)
	for i := 0; i < 15; i++ {
		date, _ := dbtime.ParseDate(fmt.Sprintf("2026-02-%02d", i%28+1))
		marks = append(marks, attendanceModel.AttendanceModel{
			StudentID:  students[i].ID,
			ScheduleID: schedules[i].ID,
			Date:       date,
			Status:     statuses[i%3],
		})
	}
	if err := db.Create(&marks).Error; err != nil {
		return err
	}

	log.Println("✅ Демо-данные загружены.")
	return nil
}
