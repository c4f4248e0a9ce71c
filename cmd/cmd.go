package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/clpeek/clpeek/api"
	"github.com/clpeek/clpeek/envconfig"
	"github.com/clpeek/clpeek/format"
	"github.com/clpeek/clpeek/gpuinfo"
	"github.com/clpeek/clpeek/logutil"
	"github.com/clpeek/clpeek/server"
	"github.com/clpeek/clpeek/version"
)

func NewCLI() *cobra.Command {
	cobra.EnableCommandSorting = false

	rootCmd := &cobra.Command{
		Use:           "clpeek",
		Short:         "OpenCL GPU capability inspector",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if envconfig.Debug {
				level = slog.LevelDebug
			}
			slog.SetDefault(logutil.NewLogger(os.Stderr, level))
		},
	}

	classifyCmd := &cobra.Command{
		Use:   "classify",
		Short: "Resolve a device description into its capability report",
		RunE:  ClassifyHandler,
	}
	classifyCmd.Flags().String("input", "", "Path to a device descriptor JSON file ('-' for stdin)")
	classifyCmd.Flags().String("vendor", "", "Platform vendor string (e.g. \"Qualcomm\")")
	classifyCmd.Flags().String("device", "", "Device name string (e.g. \"Mali-G78\")")
	classifyCmd.Flags().String("device-version", "", "Device version string (e.g. \"OpenCL 2.0 Adreno(TM) 640\")")
	classifyCmd.Flags().StringSlice("extensions", nil, "Supported extension names")
	classifyCmd.Flags().IntSlice("sub-group-sizes", nil, "Supported sub-group sizes")
	classifyCmd.Flags().Bool("remote", false, "Classify against the clpeek server at CLPEEK_HOST")

	serveCmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Start the clpeek classification server",
		RunE:    ServeHandler,
	}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Show clpeek environment configuration",
		RunE:  EnvHandler,
	}

	rootCmd.AddCommand(classifyCmd, serveCmd, envCmd)

	return rootCmd
}

func ClassifyHandler(cmd *cobra.Command, args []string) error {
	desc, err := descriptorFromFlags(cmd)
	if err != nil {
		return err
	}

	var resp *api.CapabilityReport
	if remote, _ := cmd.Flags().GetBool("remote"); remote {
		client, err := api.ClientFromEnvironment()
		if err != nil {
			return err
		}
		resp, err = client.Classify(cmd.Context(), desc)
		if err != nil {
			return err
		}
	} else {
		info := gpuinfo.NewDeviceInfo(desc.Raw())
		info.LogDetails()
		report := api.NewCapabilityReport(info)
		resp = &report
	}

	prettyPrintReport(os.Stdout, desc, resp)
	return nil
}

func descriptorFromFlags(cmd *cobra.Command) (*api.DeviceDescriptor, error) {
	var desc api.DeviceDescriptor

	if input, _ := cmd.Flags().GetString("input"); input != "" {
		var data []byte
		var err error
		if input == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(input)
		}
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &desc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", input, err)
		}
	}

	if vendor, _ := cmd.Flags().GetString("vendor"); vendor != "" {
		desc.VendorName = vendor
	}
	if device, _ := cmd.Flags().GetString("device"); device != "" {
		desc.DeviceName = device
	}
	if deviceVersion, _ := cmd.Flags().GetString("device-version"); deviceVersion != "" {
		desc.DeviceVersion = deviceVersion
	}
	if extensions, _ := cmd.Flags().GetStringSlice("extensions"); len(extensions) > 0 {
		desc.Extensions = extensions
	}
	if sizes, _ := cmd.Flags().GetIntSlice("sub-group-sizes"); len(sizes) > 0 {
		desc.SubGroupSizes = sizes
	}

	if desc.VendorName == "" && desc.DeviceName == "" && desc.DeviceVersion == "" {
		return nil, fmt.Errorf("nothing to classify: provide --input or at least one of --vendor, --device, --device-version")
	}
	return &desc, nil
}

func prettyPrintReport(out io.Writer, desc *api.DeviceDescriptor, resp *api.CapabilityReport) {
	table := tablewriter.NewWriter(out)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding(" ")
	indent := "  "

	data := [][]string{
		{indent, "Vendor:", resp.Vendor},
		{indent, "Model:", resp.Model},
		{indent, "OpenCL:", resp.CLVersion},
		{indent, "Texture arrays:", strconv.FormatBool(resp.SupportsTextureArray)},
		{indent, "Image buffers:", strconv.FormatBool(resp.SupportsImageBuffer)},
		{indent, "3D image writes:", strconv.FormatBool(resp.SupportsImage3D)},
		{indent, "FP16:", strconv.FormatBool(resp.SupportsFP16)},
	}

	if resp.WaveSizeFull > 1 {
		data = append(data,
			[]string{indent, "Wave size:", fmt.Sprintf("%d (full) / %d (half)", resp.WaveSizeFull, resp.WaveSizeHalf)},
			[]string{indent, "Register file / CU:", format.HumanNumber(uint64(resp.RegisterFileSize))},
			[]string{indent, "Max waves / CU:", strconv.Itoa(resp.MaximumWaveCount)},
		)
	}
	if len(resp.SubGroupSizes) > 0 {
		sizes := make([]string, len(resp.SubGroupSizes))
		for i, s := range resp.SubGroupSizes {
			sizes[i] = strconv.Itoa(s)
		}
		data = append(data, []string{indent, "Sub-group sizes:", strings.Join(sizes, ", ")})
	}
	if desc.GlobalMemoryBytes > 0 {
		data = append(data, []string{indent, "Global memory:", format.HumanBytes2(desc.GlobalMemoryBytes)})
	}

	fmt.Fprint(out, "Device:\n")
	table.AppendBulk(data)
	table.Render()
}

func ServeHandler(cmd *cobra.Command, args []string) error {
	ln, err := net.Listen("tcp", envconfig.Host)
	if err != nil {
		return err
	}
	return server.Serve(ln)
}

func EnvHandler(cmd *cobra.Command, args []string) error {
	envVars := envconfig.AsMap()
	keys := make([]string, 0, len(envVars))
	for k := range envVars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding(" ")

	for _, k := range keys {
		v := envVars[k]
		table.Append([]string{k, fmt.Sprintf("%v", v.Value), v.Description})
	}
	table.Render()
	return nil
}
