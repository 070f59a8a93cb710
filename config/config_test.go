package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	return path
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("HRJEDI_AUTH_JWT_SECRET", "test-secret-key-for-unit-testing")
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("期望 port=9090，实际=%d", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "test-secret-key-for-unit-testing" {
		t.Errorf("环境变量未生效: %q", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.AccessTokenTTL != 15*time.Minute {
		t.Errorf("期望 access_token_ttl=15m，实际=%s", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Report.TemplateName != "attendance.xlsx" {
		t.Errorf("期望默认模板名 attendance.xlsx，实际=%s", cfg.Report.TemplateName)
	}

	ranking := cfg.Report.Ranking()
	if ranking["Москва"] != 3 || ranking["Уфа"] != 2 || ranking["Нижний Новгород"] != 1 {
		t.Errorf("默认办公室排序错误: %v", ranking)
	}
}

func TestLoad_OfficeRanksFromFile(t *testing.T) {
	t.Setenv("HRJEDI_AUTH_JWT_SECRET", "test-secret-key-for-unit-testing")
	path := writeConfig(t, `
report:
  office_ranks:
    - name: Казань
      rank: 1
    - name: Москва
      rank: 2
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load 失败: %v", err)
	}

	ranking := cfg.Report.Ranking()
	if len(ranking) != 2 || ranking["Казань"] != 1 || ranking["Москва"] != 2 {
		t.Errorf("办公室排序未按配置文件覆盖: %v", ranking)
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")

	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("期望 jwt_secret 校验错误，实际: %v", err)
	}
}

func TestValidate_DuplicateOffice(t *testing.T) {
	cfg := &Config{
		Server: ServerConfig{Port: 8080},
		Auth:   AuthConfig{JWTSecret: "test-secret-key-for-unit-testing"},
		Report: ReportConfig{OfficeRanks: []OfficeRankConfig{
			{Name: "Уфа", Rank: 1},
			{Name: "Уфа", Rank: 2},
		}},
	}

	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "重复") {
		t.Errorf("期望重复办公室校验错误，实际: %v", err)
	}
}

func TestValidate_InvalidTimezone(t *testing.T) {
	cfg := &Config{
		App:    AppConfig{Timezone: "Mars/Olympus"},
		Server: ServerConfig{Port: 8080},
		Auth:   AuthConfig{JWTSecret: "test-secret-key-for-unit-testing"},
		Report: ReportConfig{OfficeRanks: []OfficeRankConfig{{Name: "Уфа", Rank: 1}}},
	}

	if err := cfg.Validate(); err == nil {
		t.Error("期望时区校验错误")
	}
}
