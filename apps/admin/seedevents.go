package main

import (
	"fmt"
	"time"

	"github.com/trezcool/ratiba/core/schedule"
)

// seedSlot is a recurring weekly occurrence in the demo timetable.
type seedSlot struct {
	title    string
	typ      string
	day      time.Weekday
	hour     int
	duration time.Duration
	location string
}

var demoWeek = []seedSlot{
	{title: "Algebra I", typ: schedule.TypeClass, day: time.Monday, hour: 9, duration: time.Hour, location: "Room A1"},
	{title: "Geometry", typ: schedule.TypeClass, day: time.Monday, hour: 14, duration: time.Hour, location: "Room A1"},
	{title: "Office Hours", typ: schedule.TypeOfficeHours, day: time.Tuesday, hour: 11, duration: 90 * time.Minute, location: "Office 204"},
	{title: "Algebra I", typ: schedule.TypeClass, day: time.Wednesday, hour: 9, duration: time.Hour, location: "Room A1"},
	{title: "Department Meeting", typ: schedule.TypeMeeting, day: time.Wednesday, hour: 16, duration: time.Hour, location: "Staff Room"},
	{title: "Geometry", typ: schedule.TypeClass, day: time.Thursday, hour: 14, duration: time.Hour, location: "Room A1"},
	{title: "Midterm Exam", typ: schedule.TypeExam, day: time.Friday, hour: 10, duration: 2 * time.Hour, location: "Hall C"},
}

// seedEvents fills the schedule with demo events starting from the Monday of
// the current week.
func (cli *commandLine) seedEvents(teacherID string, weeks int) error {
	now := time.Now().In(schedule.Locale)
	monday := now.AddDate(0, 0, int(time.Monday)-int(now.Weekday()))

	var count int
	for week := 0; week < weeks; week++ {
		for _, slot := range demoWeek {
			day := monday.AddDate(0, 0, 7*week+int(slot.day)-int(time.Monday))
			start := time.Date(day.Year(), day.Month(), day.Day(), slot.hour, 0, 0, 0, schedule.Locale)

			ne := schedule.NewEvent{
				TeacherID: teacherID,
				Title:     slot.title,
				Type:      slot.typ,
				Start:     schedule.FormatLocal(start),
				End:       schedule.FormatLocal(start.Add(slot.duration)),
				Location:  slot.location,
			}
			if err := ne.Validate(); err != nil {
				return err
			}
			if _, err := cli.evtSvc.CreateEvent(ne); err != nil {
				return err
			}
			count++
		}
	}

	logger.Println(fmt.Sprintf("seeded %d events for teacher %s", count, teacherID))
	return nil
}
