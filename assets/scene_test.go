package assets

import "testing"

func TestLabSceneLoads(t *testing.T) {
	layout, err := LoadScene("levels/lab.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if len(layout.Walls) != 4 {
		t.Errorf("walls = %d, want 4", len(layout.Walls))
	}
	if len(layout.GoalZones) != 1 || len(layout.Spawners) != 1 || layout.Metronome == nil {
		t.Errorf("lab scene is missing gadgets: %+v", layout)
	}
}

func TestLabSpawnerReferences(t *testing.T) {
	layout, err := LoadScene("levels/lab.tmx")
	if err != nil {
		t.Fatal(err)
	}
	if len(layout.Spawners) != 1 {
		t.Fatalf("spawners = %d, want 1", len(layout.Spawners))
	}
	if s := layout.Spawners[0]; s.ButtonID != 21 || s.TemplateID != 10 {
		t.Errorf("spawner = %+v, want button 21 template 10", s)
	}
}
