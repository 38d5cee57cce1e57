// ABOUTME: Farm management commands for the krishi CLI
// ABOUTME: Covers farms, plots, plantings, and the master-data lookups they need

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/krishisahai/krishi-cli/internal/i18n"
	"github.com/krishisahai/krishi-cli/internal/models"
)

var (
	farmName       string
	farmDistrictID int

	plotFarmID     int64
	plotName       string
	plotAcres      float64
	plotSoilTypeID int

	plantingPlotID int64
	plantingCropID int
	plantingDate   string
)

var farmsCmd = &cobra.Command{
	Use:   "farms",
	Short: "List your farms",
	Run:   farmRun(runFarmsList),
}

var farmsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new farm",
	Run:   farmRun(runFarmsAdd),
}

var farmsPlotsCmd = &cobra.Command{
	Use:   "plots",
	Short: "List plots for a farm",
	Run:   farmRun(runPlotsList),
}

var farmsPlotAddCmd = &cobra.Command{
	Use:   "plot-add",
	Short: "Add a plot to a farm",
	Run:   farmRun(runPlotAdd),
}

var farmsPlantingsCmd = &cobra.Command{
	Use:   "plantings",
	Short: "List your plantings",
	Run:   farmRun(runPlantingsList),
}

var farmsPlantCmd = &cobra.Command{
	Use:   "plant",
	Short: "Record a crop planting on a plot",
	Run:   farmRun(runPlantingAdd),
}

var farmsDistrictsCmd = &cobra.Command{
	Use:   "districts",
	Short: "List Kerala districts",
	Run:   farmRun(runDistricts),
}

var farmsSoilTypesCmd = &cobra.Command{
	Use:   "soil-types",
	Short: "List soil types",
	Run:   farmRun(runSoilTypes),
}

var farmsCropsCmd = &cobra.Command{
	Use:   "crops",
	Short: "List known crops",
	Run:   farmRun(runCrops),
}

func init() {
	farmsAddCmd.Flags().StringVar(&farmName, "name", "", "Farm name")
	farmsAddCmd.Flags().IntVar(&farmDistrictID, "district", 0, "District ID")

	farmsPlotsCmd.Flags().Int64Var(&plotFarmID, "farm", 0, "Farm ID")

	farmsPlotAddCmd.Flags().Int64Var(&plotFarmID, "farm", 0, "Farm ID")
	farmsPlotAddCmd.Flags().StringVar(&plotName, "name", "", "Plot name")
	farmsPlotAddCmd.Flags().Float64Var(&plotAcres, "acres", 0, "Plot area in acres")
	farmsPlotAddCmd.Flags().IntVar(&plotSoilTypeID, "soil-type", 0, "Soil type ID")

	farmsPlantCmd.Flags().Int64Var(&plantingPlotID, "plot", 0, "Plot ID")
	farmsPlantCmd.Flags().IntVar(&plantingCropID, "crop", 0, "Crop ID")
	farmsPlantCmd.Flags().StringVar(&plantingDate, "date", "", "Planting date (YYYY-MM-DD)")

	farmsCmd.AddCommand(farmsAddCmd, farmsPlotsCmd, farmsPlotAddCmd,
		farmsPlantingsCmd, farmsPlantCmd,
		farmsDistrictsCmd, farmsSoilTypesCmd, farmsCropsCmd)
	rootCmd.AddCommand(farmsCmd)
}

// farmRun wraps a runner with the shared setup/teardown every farm
// subcommand needs.
func farmRun(run func(ctx context.Context, a *app, w io.Writer) int) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		a, err := newApp(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
		defer a.Close()

		if exitCode := run(ctx, a, os.Stdout); exitCode != 0 {
			os.Exit(exitCode)
		}
	}
}

func runFarmsList(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	farms, err := a.api.ListFarms(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		return printJSON(w, farms)
	}
	if len(farms) == 0 {
		fmt.Fprintln(w, "No farms registered yet. Run 'krishi farms add'.")
		return 0
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDISTRICT")
	for _, f := range farms {
		fmt.Fprintf(tw, "%d\t%s\t%d\n", f.FarmID, f.FarmName, f.DistrictID)
	}
	tw.Flush()
	return 0
}

func runFarmsAdd(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	created, err := a.api.CreateFarm(ctx, models.FarmCreate{
		FarmName:   farmName,
		DistrictID: farmDistrictID,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, a.T(i18n.KeyFarmCreated))
	fmt.Fprintf(w, "Farm ID: %d\n", created.FarmID)
	return 0
}

func runPlotsList(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	plots, err := a.api.ListPlots(ctx, plotFarmID)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		return printJSON(w, plots)
	}
	if len(plots) == 0 {
		fmt.Fprintln(w, "No plots found.")
		return 0
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFARM\tNAME\tACRES\tSOIL")
	for _, p := range plots {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.2f\t%d\n",
			p.PlotID, p.FarmID, p.PlotName, p.AreaAcres, p.SoilTypeID)
	}
	tw.Flush()
	return 0
}

func runPlotAdd(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	created, err := a.api.CreatePlot(ctx, models.PlotCreate{
		FarmID:     plotFarmID,
		PlotName:   plotName,
		AreaAcres:  plotAcres,
		SoilTypeID: plotSoilTypeID,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Plot created with ID %d\n", created.PlotID)
	return 0
}

func runPlantingsList(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	plantings, err := a.api.ListPlantings(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		return printJSON(w, plantings)
	}
	if len(plantings) == 0 {
		fmt.Fprintln(w, "No plantings recorded.")
		return 0
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPLOT\tCROP\tPLANTED\tHARVESTED")
	for _, p := range plantings {
		crop := fmt.Sprintf("%d", p.CropID)
		if p.Crop != nil {
			crop = p.Crop.CropName
		}
		harvested := "-"
		if p.HarvestDate != nil {
			harvested = *p.HarvestDate
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n",
			p.PlantingID, p.PlotID, crop, p.PlantingDate, harvested)
	}
	tw.Flush()
	return 0
}

func runPlantingAdd(ctx context.Context, a *app, w io.Writer) int {
	if !a.signedIn() {
		fmt.Fprintln(w, a.T(i18n.KeyNotSignedIn))
		return 3
	}

	created, err := a.api.CreatePlanting(ctx, models.PlantingCreate{
		PlotID:       plantingPlotID,
		CropID:       plantingCropID,
		PlantingDate: plantingDate,
	})
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Planting recorded with ID %d\n", created.PlantingID)
	return 0
}

func runDistricts(ctx context.Context, a *app, w io.Writer) int {
	districts, err := a.api.Districts(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		return printJSON(w, districts)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDISTRICT")
	for _, d := range districts {
		fmt.Fprintf(tw, "%d\t%s\n", d.DistrictID, d.DistrictName)
	}
	tw.Flush()
	return 0
}

func runSoilTypes(ctx context.Context, a *app, w io.Writer) int {
	soilTypes, err := a.api.SoilTypes(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		return printJSON(w, soilTypes)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSOIL\tDESCRIPTION")
	for _, s := range soilTypes {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.SoilTypeID, s.SoilName, s.Description)
	}
	tw.Flush()
	return 0
}

func runCrops(ctx context.Context, a *app, w io.Writer) int {
	crops, err := a.api.Crops(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		return printJSON(w, crops)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCROP\tSEASON\tHARVEST DAYS")
	for _, c := range crops {
		days := "-"
		if c.TimeToHarvestDays != nil {
			days = fmt.Sprintf("%d", *c.TimeToHarvestDays)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", c.CropID, c.CropName, c.IdealPlantingSeason, days)
	}
	tw.Flush()
	return 0
}

// printJSON marshals v with indentation and returns an exit code.
func printJSON(w io.Writer, v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	fmt.Fprintln(w, string(out))
	return 0
}
