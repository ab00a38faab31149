package features

import (
	"reflect"
	"testing"
	"testing/fstest"
)

type mapReader struct {
	fsys fstest.MapFS
}

func (r mapReader) Has(path string) bool {
	_, err := r.fsys.Stat(path)
	return err == nil
}

func (r mapReader) Read(path string) string {
	data, err := r.fsys.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), Mode: 0o644}
}

func TestDetectDatabase_FirstTableEntryWins(t *testing.T) {
	// mysql precedes mongodb in the table, so mysql2 wins even though
	// mongoose is also present.
	deps := map[string]string{"mongoose": "7.0.0", "mysql2": "3.6.0"}

	db := DetectDatabase(mapReader{fstest.MapFS{}}, deps)

	if db == nil {
		t.Fatal("expected database detection")
	}
	if db.Type != "mysql" || db.Driver != "mysql2" {
		t.Fatalf("expected mysql/mysql2, got %+v", db)
	}
	if db.EnvConfigured {
		t.Fatal("env_configured should not be set without env files")
	}
}

func TestDetectDatabase_CaseInsensitive(t *testing.T) {
	deps := map[string]string{"Psycopg2-binary": "2.9.0"}

	db := DetectDatabase(mapReader{fstest.MapFS{}}, deps)

	if db == nil || db.Type != "postgresql" || db.Driver != "Psycopg2-binary" {
		t.Fatalf("expected postgresql via Psycopg2-binary, got %+v", db)
	}
}

func TestDetectDatabase_EnvPlaceholder(t *testing.T) {
	fsys := fstest.MapFS{
		".env.example": file("DB_HOST=localhost\nDB_PORT=5432\n"),
	}

	db := DetectDatabase(mapReader{fsys}, nil)

	if db == nil {
		t.Fatal("expected placeholder database record")
	}
	if db.Type != "detected via env vars" || db.Driver != "" {
		t.Fatalf("expected placeholder record, got %+v", db)
	}
	if !db.EnvConfigured {
		t.Fatal("expected env_configured")
	}
}

func TestDetectDatabase_AllEnvFilesInspected(t *testing.T) {
	// The first env file has no database markers; the later one does.
	fsys := fstest.MapFS{
		".env":       file("API_KEY=abc123\n"),
		".env.local": file("DATABASE_URL=mysql://localhost/app\n"),
	}

	db := DetectDatabase(mapReader{fsys}, nil)

	if db == nil || !db.EnvConfigured {
		t.Fatalf("expected env detection from .env.local, got %+v", db)
	}
}

func TestDetectDatabase_MalformedEnvIgnored(t *testing.T) {
	fsys := fstest.MapFS{
		".env": file("NOT A PARSEABLE LINE\n"),
	}

	if db := DetectDatabase(mapReader{fsys}, nil); db != nil {
		t.Fatalf("malformed env file should contribute nothing, got %+v", db)
	}
}

func TestDetectAuth(t *testing.T) {
	tests := []struct {
		name string
		deps map[string]string
		want *Auth
	}{
		{
			name: "first table entry wins",
			deps: map[string]string{"next-auth": "4.24.0", "auth0": "3.0.0"},
			want: &Auth{Provider: "NextAuth.js", Package: "next-auth"},
		},
		{
			name: "scoped clerk package",
			deps: map[string]string{"@clerk/nextjs": "4.27.0"},
			want: &Auth{Provider: "Clerk", Package: "@clerk/nextjs"},
		},
		{
			name: "case insensitive",
			deps: map[string]string{"Passport-Local": "1.0.0"},
			want: &Auth{Provider: "Passport", Package: "Passport-Local"},
		},
		{
			name: "no match",
			deps: map[string]string{"express": "4.18.0"},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectAuth(tt.deps)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DetectAuth() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDetectPaymentProviders(t *testing.T) {
	deps := map[string]string{
		"stripe":              "12.0.0",
		"@paypal/checkout-js": "1.0.0",
		"left-pad":            "1.3.0",
	}

	got := DetectPaymentProviders(deps)

	want := []Provider{
		{Provider: "Stripe", Package: "stripe"},
		{Provider: "PayPal", Package: "@paypal/checkout-js"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DetectPaymentProviders() = %+v, want %+v", got, want)
	}
}

func TestDetectPaymentProviders_OnePackagePerEntry(t *testing.T) {
	deps := map[string]string{
		"@stripe/stripe-js": "2.0.0",
		"stripe":            "12.0.0",
	}

	got := DetectPaymentProviders(deps)

	if len(got) != 1 {
		t.Fatalf("expected a single Stripe entry, got %+v", got)
	}
	if got[0].Provider != "Stripe" {
		t.Fatalf("expected Stripe, got %+v", got[0])
	}
}

func TestDetectPaymentProviders_Empty(t *testing.T) {
	got := DetectPaymentProviders(map[string]string{"express": "4.18.0"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected non-nil empty slice, got %v", got)
	}
}

func TestDetectEmailProviders(t *testing.T) {
	deps := map[string]string{
		"nodemailer": "6.9.0",
		"resend":     "2.0.0",
	}

	got := DetectEmailProviders(deps)

	// Table order, not dependency order: Resend precedes Nodemailer.
	want := []Provider{
		{Provider: "Resend", Package: "resend"},
		{Provider: "Nodemailer", Package: "nodemailer"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DetectEmailProviders() = %+v, want %+v", got, want)
	}
}

func TestDetectHosting(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{"netlify config", []string{"netlify.toml"}, "Netlify"},
		{"vercel directory", []string{".vercel/project.json"}, "Vercel"},
		{"serverless", []string{"serverless.yml"}, "AWS"},
		{"heroku beats docker", []string{"Procfile", "Dockerfile"}, "Heroku"},
		{"compose file", []string{"docker-compose.yml"}, "Docker"},
		{"nothing", []string{"README.md"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{}
			for _, f := range tt.files {
				fsys[f] = file("")
			}
			if got := DetectHosting(mapReader{fsys}); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
