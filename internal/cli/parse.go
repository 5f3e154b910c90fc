package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pgatool/internal/model"
	"pgatool/internal/parser"
	"pgatool/internal/service/excel"
)

type parseOptions struct {
	variant string
	airport string
	mawb    string
	groups  []string
	filters []string
	outDir  string
}

func newParseCommand(a *app) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "解析 T01 PGA 状态日志并导出表格",
		Long: `每个 --group 为 ENTRY=FILE：报关单号 + 粘贴日志所在的文本文件。
--filter 为 列名=子串，列名取 entryNumber / status / eventTime / timeZone / line。`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, rows, err := runParse(a, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d rows)\n", path, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.variant, "variant", parser.Magaya.Name, "日志来源 magaya / netchb")
	cmd.Flags().StringVar(&opts.airport, "airport", string(model.DefaultAirport), "口岸 ORD/JFK/DFW/MIA/LAX/SFO")
	cmd.Flags().StringVar(&opts.mawb, "mawb", "", "主单号（导出文件名前缀）")
	cmd.Flags().StringArrayVar(&opts.groups, "group", nil, "输入组 ENTRY=FILE，可重复")
	cmd.Flags().StringArrayVar(&opts.filters, "filter", nil, "筛选 列名=子串，可重复")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "输出目录")
	return cmd
}

// splitPair 按第一个 = 拆分
func splitPair(s string) (string, string, bool) {
	k, v, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(k) == "" {
		return "", "", false
	}
	return strings.TrimSpace(k), v, true
}

// readGroups 读取各输入组文本；数量不得超过日志来源的输入组上限
func readGroups(v parser.Variant, specs []string) ([]model.InputGroup, error) {
	if len(specs) > v.GroupCount {
		return nil, fmt.Errorf("最多 %d 个输入组，实际 %d", v.GroupCount, len(specs))
	}
	groups := model.NewInputGroups(v.GroupCount)
	for i, spec := range specs {
		entry, file, ok := splitPair(spec)
		if !ok || file == "" {
			return nil, fmt.Errorf("无效的 --group %q，应为 ENTRY=FILE", spec)
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("读取 %s 失败: %w", file, err)
		}
		groups[i].EntryNumber = entry
		groups[i].Text = string(data)
		groups[i].Expanded = true
	}
	return groups, nil
}

func buildFilter(specs []string) (model.LogFilter, error) {
	var f model.LogFilter
	for _, spec := range specs {
		col, val, ok := splitPair(spec)
		if !ok || !f.Set(col, val) {
			return f, fmt.Errorf("无效的 --filter %q", spec)
		}
	}
	return f, nil
}

func runParse(a *app, opts *parseOptions) (string, int, error) {
	v, err := parser.LookupVariant(opts.variant)
	if err != nil {
		return "", 0, err
	}
	airport := model.Airport(strings.ToUpper(strings.TrimSpace(opts.airport)))
	if !airport.In(model.LogAirports) {
		return "", 0, fmt.Errorf("无效的口岸 %q", opts.airport)
	}
	groups, err := readGroups(v, opts.groups)
	if err != nil {
		return "", 0, err
	}
	filter, err := buildFilter(opts.filters)
	if err != nil {
		return "", 0, err
	}

	rows := filter.Apply(v.Parser.Parse(groups, airport))
	a.logger.Info("status logs parsed",
		zap.String("variant", v.Name),
		zap.String("airport", string(airport)),
		zap.Int("rows", len(rows)),
	)

	f, err := excel.ExportLogRows(v, rows)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return "", 0, err
	}
	out := filepath.Join(opts.outDir, v.ExportFilename(opts.mawb))
	if err := f.SaveAs(out); err != nil {
		return "", 0, fmt.Errorf("保存 %s 失败: %w", out, err)
	}
	return out, len(rows), nil
}
