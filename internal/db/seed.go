package db

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// SeedFixtures populates the database with a small demo study plan.
// Intended for fresh databases; inserts will fail on conflicting codes.
func SeedFixtures(database *sql.DB) error {
	csID := uuid.NewString()
	mathID := uuid.NewString()

	departments := []struct{ id, code, name string }{
		{csID, "CS", "Computer Science"},
		{mathID, "MATH", "Mathematics"},
	}
	for _, d := range departments {
		if _, err := database.Exec(
			"INSERT INTO departments (id, code, name) VALUES (?, ?, ?)",
			d.id, d.code, d.name,
		); err != nil {
			return fmt.Errorf("seed departments: %w", err)
		}
	}

	osCourse := uuid.NewString()
	linAlg := uuid.NewString()

	courses := []struct {
		id, deptID string
		serial     int64
		name, book string
		status     string
	}{
		{osCourse, csID, 314, "Operating Systems", "Operating Systems: Three Easy Pieces", "active"},
		{linAlg, mathID, 271, "Linear Algebra", "Linear Algebra Done Right", "draft"},
	}
	for _, c := range courses {
		if _, err := database.Exec(
			"INSERT INTO courses (id, department_id, serial, name, book, status) VALUES (?, ?, ?, ?, ?, ?)",
			c.id, c.deptID, c.serial, c.name, c.book, c.status,
		); err != nil {
			return fmt.Errorf("seed courses: %w", err)
		}
	}

	week1 := uuid.NewString()
	week2 := uuid.NewString()

	weeks := []struct {
		id, courseID string
		serial       int64
		text         string
	}{
		{week1, osCourse, 1, "Processes and the process API"},
		{week2, osCourse, 2, "Scheduling"},
	}
	for _, w := range weeks {
		if _, err := database.Exec(
			"INSERT INTO weeks (id, course_id, serial, text) VALUES (?, ?, ?, ?)",
			w.id, w.courseID, w.serial, w.text,
		); err != nil {
			return fmt.Errorf("seed weeks: %w", err)
		}
	}

	targets := []struct {
		weekID string
		serial int64
		text   string
		source string
	}{
		{week1, 1, "Read chapters 3-6", "OSTEP"},
		{week1, 2, "Implement a small shell", "project"},
		{week2, 1, "Read chapters 7-11", "OSTEP"},
		{week2, 2, "MLFQ exercises", "OSTEP homework"},
	}
	for _, tg := range targets {
		if _, err := database.Exec(
			"INSERT INTO targets (id, week_id, serial, text, source) VALUES (?, ?, ?, ?, ?)",
			uuid.NewString(), tg.weekID, tg.serial, tg.text, tg.source,
		); err != nil {
			return fmt.Errorf("seed targets: %w", err)
		}
	}

	return nil
}
