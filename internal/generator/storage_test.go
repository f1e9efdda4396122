package generator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDirWriterWritesNestedFiles(t *testing.T) {
	root := t.TempDir()
	writer := newDirWriter(root)

	err := writer.WriteFile(context.Background(), writeFileRequest{
		Path:     "Intro/img/a.png",
		Content:  []byte("data"),
		Category: categoryAsset,
	})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(root, "Intro", "img", "a.png"))
	if err != nil || string(got) != "data" {
		t.Fatalf("unexpected file %q, %v", got, err)
	}
}

func TestWritersRejectEscapingPaths(t *testing.T) {
	writers := map[string]artifactWriter{
		"dir":    newDirWriter(t.TempDir()),
		"memory": newMemoryWriter(),
	}
	for name, writer := range writers {
		for _, p := range []string{"../outside.txt", "/abs.txt", "", "."} {
			if err := writer.WriteFile(context.Background(), writeFileRequest{Path: p, Content: []byte("x")}); err == nil {
				t.Fatalf("%s writer accepted %q", name, p)
			}
		}
	}
}

func TestMemoryWriterKeepsCopies(t *testing.T) {
	writer := newMemoryWriter()
	content := []byte("abc")
	if err := writer.WriteFile(context.Background(), writeFileRequest{Path: "index.html", Content: content}); err != nil {
		t.Fatalf("write: %v", err)
	}
	content[0] = 'x'
	if string(writer.files["index.html"]) != "abc" {
		t.Fatalf("expected memory writer to copy content, got %q", writer.files["index.html"])
	}
}

func TestPromoteWithoutPreviousOutput(t *testing.T) {
	parent := t.TempDir()
	out := filepath.Join(parent, "public")

	staging, err := stagingDir(out)
	if err != nil {
		t.Fatalf("staging: %v", err)
	}
	if err := os.WriteFile(filepath.Join(staging, "index.html"), []byte("new"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := promote(staging, out, fixedNow); err != nil {
		t.Fatalf("promote: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil || string(got) != "new" {
		t.Fatalf("unexpected promoted file %q, %v", got, err)
	}
	if _, err := os.Stat(staging); !os.IsNotExist(err) {
		t.Fatalf("expected staging directory to be gone, got %v", err)
	}
}

func TestStagingDirIsSiblingOfOutput(t *testing.T) {
	parent := t.TempDir()
	out := filepath.Join(parent, "nested", "public")

	staging, err := stagingDir(out)
	if err != nil {
		t.Fatalf("staging: %v", err)
	}
	if filepath.Dir(staging) != filepath.Dir(out) {
		t.Fatalf("expected staging next to output, got %s", staging)
	}
}

func TestCarryOverWithoutPreviousOutput(t *testing.T) {
	parent := t.TempDir()
	staging := filepath.Join(parent, "staging")

	kept, err := carryOver(filepath.Join(parent, "public"), staging, []string{"CNAME"})
	if err != nil || len(kept) != 0 {
		t.Fatalf("expected nothing to carry over, got %v, %v", kept, err)
	}
}
