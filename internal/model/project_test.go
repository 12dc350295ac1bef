package model

import (
	"testing"
)

func TestNewProject(t *testing.T) {
	project := NewProject("Launch", date(2024, 6, 1), date(2024, 6, 30))

	if project.Name != "Launch" {
		t.Errorf("Expected name 'Launch', got '%s'", project.Name)
	}
	if len(project.Tasks) != 0 {
		t.Errorf("Expected empty task list, got %d", len(project.Tasks))
	}
	if project.DurationDays() != 30 {
		t.Errorf("Expected 30 days, got %d", project.DurationDays())
	}
}

func TestProject_AddTaskLinksParent(t *testing.T) {
	project := NewProject("Launch", date(2024, 6, 1), date(2024, 6, 30))
	project.AddTask(&Task{ID: "g", Title: "Phase 1"})
	project.AddTask(&Task{ID: "a", Title: "Spec", ParentID: "g"})
	project.AddTask(&Task{ID: "b", Title: "Build", ParentID: "g"})
	project.AddTask(&Task{ID: "c", Title: "Orphan", ParentID: "missing"})

	group := project.GetTask("g")
	if group == nil {
		t.Fatal("Expected group task to exist")
	}
	if !group.IsGroup {
		t.Error("Expected group task to be marked IsGroup")
	}
	if len(group.Children) != 2 || group.Children[0] != "a" || group.Children[1] != "b" {
		t.Errorf("Expected children [a b], got %v", group.Children)
	}

	children := project.ChildrenOf("g")
	if len(children) != 2 || children[1].Title != "Build" {
		t.Errorf("Unexpected children: %v", children)
	}

	roots := project.Roots()
	if len(roots) != 2 {
		t.Fatalf("Expected 2 roots (group and orphan), got %d", len(roots))
	}
	if roots[0].ID != "g" || roots[1].ID != "c" {
		t.Errorf("Expected roots [g c], got [%s %s]", roots[0].ID, roots[1].ID)
	}

	if project.GetTask("nope") != nil {
		t.Error("Expected nil for unknown task")
	}
}

func TestProject_AddHolidayDeduplicates(t *testing.T) {
	project := NewProject("Launch", date(2024, 1, 1), date(2024, 12, 31))
	project.AddHoliday(Holiday{Date: date(2024, 12, 25), Name: "Christmas"})
	project.AddHoliday(Holiday{Date: date(2024, 12, 25), Name: "Christmas Day"})
	project.AddHoliday(Holiday{Date: date(2024, 12, 26), Name: "Boxing Day"})

	if len(project.Holidays) != 2 {
		t.Errorf("Expected 2 holidays, got %d", len(project.Holidays))
	}
	if project.Holidays[0].Name != "Christmas" {
		t.Errorf("Expected first holiday to be kept, got '%s'", project.Holidays[0].Name)
	}
}

func TestProject_GetOverallProgress(t *testing.T) {
	project := NewProject("Launch", date(2024, 6, 1), date(2024, 6, 30))
	if project.GetOverallProgress() != 0 {
		t.Errorf("Expected 0 for empty project, got %f", project.GetOverallProgress())
	}

	project.AddTask(&Task{ID: "g"})
	project.AddTask(&Task{ID: "a", ParentID: "g", Progress: 1})
	project.AddTask(&Task{ID: "b", ParentID: "g", Progress: 0.5})

	if got := project.GetOverallProgress(); got != 75 {
		t.Errorf("Expected 75, got %f", got)
	}
}
