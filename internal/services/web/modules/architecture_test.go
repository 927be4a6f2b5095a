package modules

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

var featureAreas = []string{"admin", "assets", "auth", "donors", "events", "health", "language", "profile", "public", "sos"}

func TestFeatureModulesDoNotImportSiblingModules(t *testing.T) {
	t.Parallel()

	entries, err := filepath.Glob(filepath.Join("*", "*.go"))
	if err != nil {
		t.Fatalf("glob module files: %v", err)
	}
	fset := token.NewFileSet()
	for _, file := range entries {
		parsed, err := parser.ParseFile(fset, file, nil, parser.ImportsOnly)
		if err != nil {
			t.Fatalf("parse imports for %s: %v", file, err)
		}
		for _, imp := range parsed.Imports {
			path := strings.Trim(imp.Path.Value, "\"")
			if strings.Contains(path, "/internal/services/web/modules/") {
				t.Fatalf("file %s imports sibling module path %q", file, path)
			}
		}
	}
}

func TestStreamModulesDoNotDependOnShellContext(t *testing.T) {
	t.Parallel()

	// Stream modules run without a lease, so reading the shell from the
	// request context would panic.
	for _, area := range []string{"assets", "events", "health"} {
		files, err := filepath.Glob(filepath.Join(area, "*.go"))
		if err != nil {
			t.Fatalf("glob %s: %v", area, err)
		}
		for _, file := range files {
			if strings.HasSuffix(file, "_test.go") {
				continue
			}
			data, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("read %s: %v", file, err)
			}
			for _, forbidden := range []string{"modulehandler", "pagerender", "FromContext"} {
				if strings.Contains(string(data), forbidden) {
					t.Fatalf("%s references %s", file, forbidden)
				}
			}
		}
	}
}

func TestRoutePathsRemainUniqueConstants(t *testing.T) {
	t.Parallel()

	paths := []string{
		routepath.Root,
		routepath.Donors,
		routepath.FirstAid,
		routepath.ServicesPrefix,
		routepath.Login,
		routepath.Register,
		routepath.Logout,
		routepath.Profile,
		routepath.Admin,
		routepath.Language,
		routepath.SOS,
		routepath.Events,
		routepath.Health,
		routepath.StaticPrefix,
	}
	seen := map[string]struct{}{}
	for _, path := range paths {
		if _, ok := seen[path]; ok {
			t.Fatalf("duplicate route path constant %q", path)
		}
		seen[path] = struct{}{}
	}
}

func TestFeatureModulesFollowTemplate(t *testing.T) {
	t.Parallel()

	for _, area := range featureAreas {
		for _, file := range []string{"module.go", "module_test.go"} {
			path := filepath.Join(area, file)
			if _, err := os.Stat(path); err != nil {
				t.Fatalf("module %q missing required file %q: %v", area, file, err)
			}
		}
	}
}
