package main

import (
	"github.com/spf13/cobra"

	"github.com/vcsa-tools/vclm/internal/lifecycle"
	"github.com/vcsa-tools/vclm/internal/vsphere"
)

var (
	scheduleDay    string
	scheduleHour   int
	scheduleMinute int
)

var setScheduleCmd = &cobra.Command{
	Use:   "set-schedule",
	Short: "Set the download check schedule",
	Long: `Set how often the appliance checks for new patches.

Examples:
  vclm set-schedule                               Check every day at 02:00
  vclm set-schedule --day MONDAY --hour 3 --minute 30`,
	Run: func(cmd *cobra.Command, args []string) {
		runOperation(cmd, "Download schedule updated", func(c *vsphere.Client) (*lifecycle.Result, error) {
			return lifecycle.SetSchedule(c, scheduleDay, scheduleHour, scheduleMinute)
		})
	},
}

func init() {
	setScheduleCmd.Flags().StringVar(&scheduleDay, "day", lifecycle.DayEveryday, "Day of week or EVERYDAY")
	setScheduleCmd.Flags().IntVar(&scheduleHour, "hour", 2, "Hour (0-23)")
	setScheduleCmd.Flags().IntVar(&scheduleMinute, "minute", 0, "Minute (0-59)")

	rootCmd.AddCommand(setScheduleCmd)
}
