package model

import (
	"reflect"
	"testing"
)

func TestNormalizeAvailability_AllSubSlotsAddsFullTime(t *testing.T) {
	got := NormalizeAvailability([]string{"Morning", "Afternoon", "Evening"})
	want := []string{"Full Time", "Morning", "Afternoon", "Evening"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAvailability() = %v, want %v", got, want)
	}
}

func TestNormalizeAvailability_DeselectingOneRemovesFullTime(t *testing.T) {
	got := NormalizeAvailability([]string{"Full Time", "Morning", "Afternoon"})
	want := []string{"Morning", "Afternoon"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAvailability() = %v, want %v", got, want)
	}
}

func TestNormalizeAvailability_FullTimeSelectsAllSubSlots(t *testing.T) {
	got := NormalizeAvailability([]string{"Full Time"})
	want := []string{"Full Time", "Morning", "Afternoon", "Evening"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAvailability() = %v, want %v", got, want)
	}
}

func TestNormalizeAvailability_UnknownAndDuplicateTags(t *testing.T) {
	got := NormalizeAvailability([]string{"Morning", "Morning", "Night Shift", ""})
	want := []string{"Morning"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeAvailability() = %v, want %v", got, want)
	}
}

func TestNormalizeAvailability_Empty(t *testing.T) {
	got := NormalizeAvailability(nil)
	if len(got) != 0 {
		t.Errorf("NormalizeAvailability(nil) = %v, want empty", got)
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{StatusScheduled, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !IsValidStatus(status) {
			t.Errorf("IsValidStatus(%q) = false, want true", status)
		}
	}
	if IsValidStatus("Pending") {
		t.Error(`IsValidStatus("Pending") = true, want false`)
	}
}
