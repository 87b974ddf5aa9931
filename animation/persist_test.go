package animation

import (
	"encoding/json"
	"image"
	"slices"
	"testing"
)

func TestReadLegacy(t *testing.T) {
	c := NewCollection()
	c.Playback().Playing = true
	q := record(c)

	data := []byte(`{"fps":8,"frameCount":3,"frameX":1,"frameY":2,"frameWidth":10,"frameHeight":12,"scale":2.5,"loop":false}`)
	if err := c.Read(data); err != nil {
		t.Fatalf("read: %v", err)
	}

	if c.Count() != 1 || c.CurrentIndex() != 0 {
		t.Fatalf("expected one selected animation, got count=%d idx=%d", c.Count(), c.CurrentIndex())
	}
	a := c.AnimationAt(0)
	want := Animation{Name: "Animation 1", FPS: 8, FrameCount: 3, FrameX: 1, FrameY: 2, FrameWidth: 10, FrameHeight: 12}
	if *a != want {
		t.Fatalf("expected %+v, got %+v", want, *a)
	}
	pb := c.Playback()
	if pb.Scale != 2.5 || pb.Loop || pb.Playing {
		t.Fatalf("expected scale 2.5, no loop, not playing, got %+v", pb)
	}
	if c.CreatedCount() != 1 {
		t.Fatalf("expected generated name to be consumed")
	}
	if q.Len() == 0 {
		t.Fatalf("expected legacy insert to notify observers")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	c := NewCollection()
	c.CreateAnimation(image.Pt(32, 8))
	c.CreateAnimation(image.Pt(8, 8))
	c.Rename("Animation 2", "jump")
	c.AnimationNamed("jump").Reverse = true
	c.SetCurrentIndex(1)
	pb := c.Playback()
	pb.Scale, pb.Loop, pb.Playing = 3, false, true

	obj := map[string]json.RawMessage{}
	if err := c.WriteAnimations(obj); err != nil {
		t.Fatalf("write animations: %v", err)
	}
	if err := c.Write(obj); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := obj["currentAnimationPlayback"]; !ok {
		t.Fatalf("expected currentAnimationPlayback key, got %v", obj)
	}
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got := NewCollection()
	if err := got.Read(data); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !slices.Equal(got.Names(), []string{"Animation 1", "jump"}) {
		t.Fatalf("unexpected names %v", got.Names())
	}
	for i, a := range c.Animations() {
		if *got.AnimationAt(i) != *a {
			t.Fatalf("animation %d: expected %+v, got %+v", i, *a, *got.AnimationAt(i))
		}
	}
	if got.CurrentIndex() != 1 {
		t.Fatalf("expected index 1, got %d", got.CurrentIndex())
	}
	gp := got.Playback()
	if gp.Scale != 3 || gp.Loop || !gp.Playing {
		t.Fatalf("expected 3/false/true, got %v/%v/%v", gp.Scale, gp.Loop, gp.Playing)
	}
	if gp.Animation() != got.CurrentAnimation() {
		t.Fatalf("expected playback bound to the restored selection")
	}
}

func TestReadCurrentFormat(t *testing.T) {
	t.Run("reconciles_generated_names", func(t *testing.T) {
		c := NewCollection()
		data := []byte(`{"animations":[{"name":"Animation 3"},{"name":"walk"}]}`)
		if err := c.Read(data); err != nil {
			t.Fatalf("read: %v", err)
		}
		if c.CurrentIndex() != 0 {
			t.Fatalf("expected first animation selected, got %d", c.CurrentIndex())
		}
		name, ok := c.CreateAnimation(image.Pt(8, 8))
		if !ok || name != "Animation 4" {
			t.Fatalf("expected Animation 4, got %q", name)
		}
	})

	t.Run("duplicate_names", func(t *testing.T) {
		c := NewCollection()
		if err := c.Read([]byte(`{"animations":[{"name":"a"},{"name":"a"}]}`)); err == nil {
			t.Fatalf("expected duplicate error")
		}
	})

	t.Run("empty_object", func(t *testing.T) {
		c := NewCollection()
		if err := c.Read([]byte(`{}`)); err != nil {
			t.Fatalf("read: %v", err)
		}
		if c.Count() != 0 || c.CurrentIndex() != -1 {
			t.Fatalf("expected empty collection")
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if err := NewCollection().Read([]byte(`{"animations":`)); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestInsertJSON(t *testing.T) {
	c := named("walk", "Animation 1")
	c.SetCurrentIndex(0)

	cases := []struct {
		name     string
		data     string
		index    int
		wantName string
		wantErr  bool
	}{
		{"keeps_free_name", `{"name":"jump","fps":9}`, 1, "jump", false},
		{"renames_taken_name", `{"name":"walk"}`, 0, "Animation 2", false},
		{"names_unnamed", `{"fps":2}`, 4, "Animation 3", false},
		{"bad_index", `{"name":"x"}`, 99, "", true},
		{"bad_json", `{`, 0, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.InsertJSON([]byte(tc.data), tc.index)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("insert: %v", err)
			}
			if got != tc.wantName || c.IndexOf(got) != tc.index {
				t.Fatalf("expected %q at %d, got %q at %d", tc.wantName, tc.index, got, c.IndexOf(got))
			}
		})
	}
	if c.CurrentAnimation().Name != "walk" {
		t.Fatalf("expected selection to follow walk, got %v", c.CurrentAnimation())
	}
}

func TestReadFailureLeavesCollectionUntouched(t *testing.T) {
	cases := []struct {
		name     string
		existing []string
		data     string
	}{
		{"duplicate_in_document", nil, `{"animations":[{"name":"a"},{"name":"b"},{"name":"a"}]}`},
		{"duplicate_of_existing", []string{"b"}, `{"animations":[{"name":"a"},{"name":"b"}]}`},
		{"bad_entry", nil, `{"animations":[{"name":"a"},{"name":"b","fps":"fast"}]}`},
		{"bad_playback", nil, `{"animations":[{"name":"a"}],"currentAnimationPlayback":{"scale":"big"}}`},
		{"bad_legacy", nil, `{"fps":"x"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := named(tc.existing...)
			created := c.CreatedCount()
			q := record(c)
			if err := c.Read([]byte(tc.data)); err == nil {
				t.Fatalf("expected error")
			}
			if !slices.Equal(c.Names(), tc.existing) {
				t.Fatalf("expected %v, got %v", tc.existing, c.Names())
			}
			if c.CreatedCount() != created {
				t.Fatalf("expected name counter %d, got %d", created, c.CreatedCount())
			}
			if q.Len() != 0 {
				t.Fatalf("expected no events, got %v", q.Drain())
			}
		})
	}
}

func TestReplace(t *testing.T) {
	t.Run("swaps_contents", func(t *testing.T) {
		c := named("old")
		if err := c.Replace([]byte(`{"animations":[{"name":"a"},{"name":"old"}],"currentAnimationIndex":1}`)); err != nil {
			t.Fatalf("replace: %v", err)
		}
		if !slices.Equal(c.Names(), []string{"a", "old"}) || c.CurrentIndex() != 1 {
			t.Fatalf("unexpected state %v at %d", c.Names(), c.CurrentIndex())
		}
	})

	t.Run("failure_keeps_contents", func(t *testing.T) {
		c := named("x", "y")
		c.SetCurrentIndex(1)
		q := record(c)
		if err := c.Replace([]byte(`{"animations":[{"name":"a"},{"name":"a"}]}`)); err == nil {
			t.Fatalf("expected error")
		}
		if !slices.Equal(c.Names(), []string{"x", "y"}) || c.CurrentIndex() != 1 {
			t.Fatalf("expected x,y with y selected, got %v at %d", c.Names(), c.CurrentIndex())
		}
		if q.Len() != 0 {
			t.Fatalf("expected no events, got %v", q.Drain())
		}
	})
}

func TestRefusedInsertKeepsNameCounter(t *testing.T) {
	c := named("Animation 1")
	if _, err := c.InsertJSON([]byte(`{"fps":3}`), 5); err == nil {
		t.Fatalf("expected refusal")
	}
	if c.CreatedCount() != 0 {
		t.Fatalf("expected counter 0, got %d", c.CreatedCount())
	}
	name, err := c.InsertJSON([]byte(`{"fps":3}`), 1)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if name != "Animation 2" || c.CreatedCount() != 2 {
		t.Fatalf("expected Animation 2 with counter 2, got %q with %d", name, c.CreatedCount())
	}
}

func TestReadLegacySkipsTakenName(t *testing.T) {
	c := named("Animation 1")
	if err := c.Read([]byte(`{"fps":5}`)); err != nil {
		t.Fatalf("read: %v", err)
	}
	if !slices.Equal(c.Names(), []string{"Animation 2", "Animation 1"}) {
		t.Fatalf("unexpected names %v", c.Names())
	}
	if c.CreatedCount() != 2 {
		t.Fatalf("expected counter 2, got %d", c.CreatedCount())
	}
}
