package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"pgatool/internal/model"
	"pgatool/internal/service/excel"
)

type remapOptions struct {
	input     string
	template  string
	outDir    string
	mawb      string
	flight    string
	airport   string
	houseBill string
	entryDate string
}

func newRemapCommand(a *app) *cobra.Command {
	opts := &remapOptions{}

	cmd := &cobra.Command{
		Use:   "remap",
		Short: "TEMU PGA 清单 -> NETCHB 上传文件",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, issues, err := runRemap(cmd.Context(), a, opts)
			if err != nil {
				return err
			}
			for _, is := range issues {
				fmt.Fprintf(cmd.ErrOrStderr(), "row %d: %s\n", is.SourceRow, strings.Join(is.Messages, "; "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.input, "in", "", "源 .xlsx 文件")
	cmd.Flags().StringVar(&opts.mawb, "mawb", "", "主单号 xxx-xxxxxxxx")
	cmd.Flags().StringVar(&opts.flight, "flight", "", "航班号")
	cmd.Flags().StringVar(&opts.airport, "airport", "", "口岸 ORD/JFK/MIA/LAX/SFO（默认 ORD）")
	cmd.Flags().StringVar(&opts.houseBill, "house-bill", "", "分单号")
	cmd.Flags().StringVar(&opts.entryDate, "entry-date", "", "进口日期")
	cmd.Flags().StringVar(&opts.template, "template", "", "模板路径或 URL（覆盖配置文件）")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "输出目录")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

// templateSource 命令行 --template 优先，其次配置文件
func (o *remapOptions) templateSource(a *app) excel.TemplateSource {
	src := excel.TemplateSource{
		Path:    a.cfg.Template.Path,
		URL:     a.cfg.Template.URL,
		Timeout: a.cfg.TemplateTimeout(),
	}
	switch {
	case strings.HasPrefix(o.template, "http://"), strings.HasPrefix(o.template, "https://"):
		src.Path = ""
		src.URL = o.template
	case o.template != "":
		src.Path = o.template
	}
	return src
}

func runRemap(ctx context.Context, a *app, opts *remapOptions) (string, []model.RowIssue, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := excel.CheckUploadName(opts.input); err != nil {
		return "", nil, err
	}
	form := model.RemapForm{
		MAWB:      strings.TrimSpace(opts.mawb),
		FlightNo:  strings.TrimSpace(opts.flight),
		Airport:   model.Airport(strings.ToUpper(strings.TrimSpace(opts.airport))),
		HouseBill: opts.houseBill,
		EntryDate: opts.entryDate,
	}
	if err := excel.ValidateRemapForm(form); err != nil {
		return "", nil, err
	}

	in, err := os.Open(opts.input)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", excel.ErrUnreadableUpload, err)
	}
	defer in.Close()

	src, err := excel.OpenUpload(in)
	if err != nil {
		return "", nil, err
	}
	defer src.Close()

	tmpl, err := opts.templateSource(a).Load(ctx)
	if err != nil {
		return "", nil, err
	}
	defer tmpl.Close()

	res, err := excel.NewRemapper(a.logger.Named("remap")).Remap(src, tmpl, form)
	if err != nil {
		return "", nil, err
	}
	defer res.File.Close()

	if err := os.MkdirAll(opts.outDir, 0755); err != nil {
		return "", nil, err
	}
	out := filepath.Join(opts.outDir, res.Filename)
	if err := res.File.SaveAs(out); err != nil {
		return "", nil, fmt.Errorf("保存 %s 失败: %w", out, err)
	}
	return out, res.Issues, nil
}
