package script

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/spriteanim/animation"
)

var ErrNoScript = errors.New("script: empty script")

// RunFile runs the tengo script at path, see Run.
func RunFile(ctx context.Context, path string, coll *animation.Collection, canvas image.Point) ([]animation.Event, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	events, err := Run(ctx, src, coll, canvas)
	if err != nil {
		return events, fmt.Errorf("script: %s: %w", path, err)
	}
	return events, nil
}

// Run executes src with the global `anim` bound to coll. canvas sizes the
// animations created by anim.create(). It returns every event coll emitted
// while the script ran.
func Run(ctx context.Context, src []byte, coll *animation.Collection, canvas image.Point) ([]animation.Event, error) {
	if len(strings.TrimSpace(string(src))) == 0 {
		return nil, ErrNoScript
	}
	if coll == nil {
		return nil, fmt.Errorf("script: nil collection")
	}

	q := &animation.EventQueue{}
	unsubscribe := coll.Subscribe(q.Handler())
	defer unsubscribe()

	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := s.Add("anim", buildEngine(coll, canvas)); err != nil {
		return nil, err
	}

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile: %w", err)
	}
	if err := compiled.RunContext(ctx); err != nil {
		return q.Drain(), fmt.Errorf("script: run: %w", err)
	}
	return q.Drain(), nil
}

func buildEngine(coll *animation.Collection, canvas image.Point) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	fn := func(name string, f tengo.CallableFunc) {
		values[name] = &tengo.UserFunction{Name: name, Value: f}
	}

	fn("count", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(coll.Count())}, nil
	})

	fn("current", func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(coll.CurrentIndex())}, nil
	})

	fn("names", func(args ...tengo.Object) (tengo.Object, error) {
		names := coll.Names()
		arr := make([]tengo.Object, len(names))
		for i, n := range names {
			arr[i] = &tengo.String{Value: n}
		}
		return &tengo.Array{Value: arr}, nil
	})

	fn("index_of", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		return &tengo.Int{Value: int64(coll.IndexOf(objectAsString(args[0])))}, nil
	})

	fn("get", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		a := coll.AnimationNamed(objectAsString(args[0]))
		if a == nil {
			return tengo.UndefinedValue, nil
		}
		return animationToObject(a), nil
	})

	fn("select", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		i, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "index", Expected: "int", Found: args[0].TypeName()}
		}
		return boolObject(coll.SetCurrentIndex(i)), nil
	})

	fn("create", func(args ...tengo.Object) (tengo.Object, error) {
		name, ok := coll.CreateAnimation(canvas)
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.String{Value: name}, nil
	})

	fn("remove", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		return boolObject(coll.RemoveAnimation(objectAsString(args[0]))), nil
	})

	fn("take", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		i, ok := tengo.ToInt(args[0])
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{Name: "index", Expected: "int", Found: args[0].TypeName()}
		}
		a := coll.TakeAnimation(i)
		if a == nil {
			return tengo.UndefinedValue, nil
		}
		return animationToObject(a), nil
	})

	fn("rename", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		return boolObject(coll.Rename(objectAsString(args[0]), objectAsString(args[1]))), nil
	})

	fn("move", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		from, ok1 := tengo.ToInt(args[0])
		to, ok2 := tengo.ToInt(args[1])
		if !ok1 || !ok2 {
			return nil, tengo.ErrInvalidArgumentType{Name: "index", Expected: "int"}
		}
		return boolObject(coll.Move(from, to)), nil
	})

	fn("duplicate", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 1 {
			return nil, tengo.ErrWrongNumArguments
		}
		name, ok := coll.Duplicate(objectAsString(args[0]))
		if !ok {
			return tengo.UndefinedValue, nil
		}
		return &tengo.String{Value: name}, nil
	})

	fn("set_fps", func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return nil, tengo.ErrWrongNumArguments
		}
		a := coll.AnimationNamed(objectAsString(args[0]))
		fps, ok := tengo.ToInt(args[1])
		if a == nil || !ok || fps <= 0 {
			return tengo.FalseValue, nil
		}
		a.FPS = fps
		return tengo.TrueValue, nil
	})

	return &tengo.ImmutableMap{Value: values}
}

func animationToObject(a *animation.Animation) tengo.Object {
	return &tengo.ImmutableMap{Value: map[string]tengo.Object{
		"name":         &tengo.String{Value: a.Name},
		"fps":          &tengo.Int{Value: int64(a.FPS)},
		"frame_count":  &tengo.Int{Value: int64(a.FrameCount)},
		"frame_x":      &tengo.Int{Value: int64(a.FrameX)},
		"frame_y":      &tengo.Int{Value: int64(a.FrameY)},
		"frame_width":  &tengo.Int{Value: int64(a.FrameWidth)},
		"frame_height": &tengo.Int{Value: int64(a.FrameHeight)},
		"reverse":      boolObject(a.Reverse),
	}}
}

func boolObject(b bool) tengo.Object {
	if b {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
