package amortization

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"loan-amortization/internal/model"
)

// WriteScheduleCSVFile writes schedule as CSV to path, truncating any existing file.
func WriteScheduleCSVFile(path string, schedule model.Schedule) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteScheduleCSV(f, schedule); err != nil {
		return err
	}
	return f.Close()
}

func WriteScheduleCSV(out io.Writer, schedule model.Schedule) error {
	w := csv.NewWriter(out)

	header := []string{
		"period",
		"principal",
		"interest",
		"total",
		"remaining_balance",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range schedule {
		row := []string{
			strconv.Itoa(r.Period),
			fmtFloat(r.Principal),
			fmtFloat(r.Interest),
			fmtFloat(r.Total),
			fmtFloat(r.RemainingBalance),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
