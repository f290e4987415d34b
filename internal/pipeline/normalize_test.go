package pipeline

import "testing"

func TestNewNormalizerRejectsBadPatterns(t *testing.T) {
	if _, err := NewNormalizer(Options{IgnorePatterns: []string{"["}}); err == nil {
		t.Fatal("bad ignore pattern accepted")
	}
	if _, err := NewNormalizer(Options{RemovePatterns: []string{"("}}); err == nil {
		t.Fatal("bad remove pattern accepted")
	}
}

func TestKey(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		line string
		want string
	}{
		{name: "case folded by default", opts: DefaultOptions(), line: "Error: X", want: "error: x"},
		{name: "case retained when sensitive", opts: func() Options {
			o := DefaultOptions()
			o.CaseSensitive = true
			return o
		}(), line: "Error: X", want: "Error: X"},
		{name: "numeric prefix stripped", opts: DefaultOptions(), line: "123: connection lost", want: "connection lost"},
		{name: "bracketed numeric prefix stripped", opts: DefaultOptions(), line: "[0042] connection lost", want: "connection lost"},
		{name: "numeric prefix kept when disabled", opts: func() Options {
			o := DefaultOptions()
			o.StripLineNumbers = false
			return o
		}(), line: "123: connection lost", want: "123: connection lost"},
		{name: "tag prefix stripped", opts: DefaultOptions(), line: "[INFO] started", want: "started"},
		{name: "tag prefix kept when disabled", opts: func() Options {
			o := DefaultOptions()
			o.StripTags = false
			return o
		}(), line: "[INFO] started", want: "[info] started"},
		{name: "number then tag stripped", opts: DefaultOptions(), line: "[07] [WARN] low disk", want: "low disk"},
		{name: "ignore pattern removes timestamp", opts: func() Options {
			o := DefaultOptions()
			o.IgnorePatterns = []string{`\d{4}-\d{2}-\d{2} \d{2}:\d{2} `}
			return o
		}(), line: "2024-01-01 10:05 Connected", want: "connected"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := NewNormalizer(tc.opts)
			if err != nil {
				t.Fatal(err)
			}
			if got := n.Key(tc.line); got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestKeyIgnorePatternOrder(t *testing.T) {
	// Each pattern operates on the previous pattern's result, so declaration
	// order changes the key.
	opts := DefaultOptions()
	opts.IgnorePatterns = []string{"bar", "foo"}
	n, err := NewNormalizer(opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Key("fbaroo"); got != "" {
		t.Fatalf("got %q want empty", got)
	}

	opts.IgnorePatterns = []string{"foo", "bar"}
	n, err = NewNormalizer(opts)
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Key("fbaroo"); got != "foo" {
		t.Fatalf("got %q want %q", got, "foo")
	}
}

func TestRemovable(t *testing.T) {
	opts := DefaultOptions()
	opts.RemovePatterns = []string{`^# `}
	n, err := NewNormalizer(opts)
	if err != nil {
		t.Fatal(err)
	}
	if !n.Removable("# comment") {
		t.Fatal("comment line not removable")
	}
	if n.Removable("payload # trailing") {
		t.Fatal("anchored pattern matched mid-line")
	}
}
