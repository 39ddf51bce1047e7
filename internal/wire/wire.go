// Package wire provides dependency injection for the mnemona application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/mnemona/internal/adapters/sqlite"
	"github.com/example/mnemona/internal/app"
	"github.com/example/mnemona/internal/db"
	"github.com/example/mnemona/internal/ports/primary"
)

var (
	courseService     primary.CourseService
	departmentService primary.DepartmentService
	scheduleService   primary.ScheduleService
	weekService       primary.WeekService
	targetService     primary.TargetService
	once              sync.Once
)

// CourseService returns the singleton CourseService instance.
func CourseService() primary.CourseService {
	once.Do(initServices)
	return courseService
}

// DepartmentService returns the singleton DepartmentService instance.
func DepartmentService() primary.DepartmentService {
	once.Do(initServices)
	return departmentService
}

// ScheduleService returns the singleton ScheduleService instance.
func ScheduleService() primary.ScheduleService {
	once.Do(initServices)
	return scheduleService
}

// WeekService returns the singleton WeekService instance.
func WeekService() primary.WeekService {
	once.Do(initServices)
	return weekService
}

// TargetService returns the singleton TargetService instance.
func TargetService() primary.TargetService {
	once.Do(initServices)
	return targetService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	courseRepo := sqlite.NewCourseRepository(database)
	departmentRepo := sqlite.NewDepartmentRepository(database)
	weekRepo := sqlite.NewWeekRepository(database)
	targetRepo := sqlite.NewTargetRepository(database)
	scheduleRepo := sqlite.NewScheduleRepository(database)

	// Services (primary ports implementation)
	courseService = app.NewCourseService(courseRepo, weekRepo, targetRepo)
	departmentService = app.NewDepartmentService(departmentRepo)
	scheduleService = app.NewScheduleService(scheduleRepo, targetRepo)
	weekService = app.NewWeekService(weekRepo)
	targetService = app.NewTargetService(targetRepo)
}
