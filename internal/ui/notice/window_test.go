package notice

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestShowSetsText(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	fixed := time.Date(2024, 3, 1, 7, 30, 5, 0, time.UTC)
	n := New(app, Config{Now: func() time.Time { return fixed }})
	n.Show("Alarm", "Alarm time reached!")

	title, message := n.Text()
	if title != "Alarm" || message != "Alarm time reached!" {
		t.Fatalf("Text() = (%q, %q)", title, message)
	}
	if n.stamp.Text != "07:30:05" {
		t.Fatalf("stamp = %q", n.stamp.Text)
	}
	if n.runner.Active() {
		t.Fatalf("auto dismiss scheduled without AutoDismiss")
	}
	n.Hide()
}

func TestAutoDismissIsCancelledByHide(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	n := New(app, Config{AutoDismiss: time.Hour})
	n.Show("Time's Up", "The timer has ended!")
	if !n.runner.Active() {
		t.Fatalf("auto dismiss not scheduled")
	}
	n.Hide()
	if n.runner.Active() {
		t.Fatalf("auto dismiss still active after Hide")
	}
}

func TestLayoutMinSizeFitsFooter(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	n := New(app, Config{})
	n.Show("Alarm", "x")
	size := n.window.Content().MinSize()
	if size.Width <= n.dismiss.MinSize().Width {
		t.Fatalf("min width %v does not fit the dismiss button", size.Width)
	}
}
