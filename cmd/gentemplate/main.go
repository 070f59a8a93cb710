package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bardiniww/lanit.hrjedi/internal/attendance"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "gentemplate",
		Short: "生成月度考勤报表的 xlsx 模板",
		Long: "生成报表服务使用的 xlsx 模板：summary 表（表头与工时合计公式）\n" +
			"与 detail 表（到访明细与办公室字典表头）。\n" +
			"输出路径应与配置中的 report.template_dir / report.template_name 一致。",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeTemplate(cmd, output, force)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o",
		filepath.Join("reports", attendance.DefaultTemplateName), "模板输出路径")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "覆盖已存在的文件")
	return cmd
}

func writeTemplate(cmd *cobra.Command, output string, force bool) error {
	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("%s 已存在，使用 --force 覆盖", output)
	}

	if dir := filepath.Dir(output); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建目录失败: %w", err)
		}
	}

	f, err := attendance.BuildTemplate()
	if err != nil {
		return fmt.Errorf("生成模板失败: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("写入模板失败: %w", err)
	}

	cmd.Printf("模板已写入 %s\n", output)
	return nil
}
