package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"sycobench/domain/hypothesis"
	"sycobench/internal/errors"
)

// SaveReportWorkbook writes the report as an xlsx workbook with one summary
// sheet per hypothesis.
func SaveReportWorkbook(path string, report *hypothesis.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeSycophancySheet(f, report); err != nil {
		return errors.ExportError(path, err)
	}
	if err := writeAdversarialSheet(f, report); err != nil {
		return errors.ExportError(path, err)
	}
	if err := writeCrossModelSheet(f, report); err != nil {
		return errors.ExportError(path, err)
	}

	f.DeleteSheet("Sheet1")
	if err := f.SaveAs(path); err != nil {
		return errors.ExportError(path, err)
	}
	return nil
}

func modelKeys(report *hypothesis.Report) []string {
	keys := make([]string, 0, len(report.ByModel))
	for k := range report.ByModel {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func writeSycophancySheet(f *excelize.File, report *hypothesis.Report) error {
	const sheet = "H1 Sycophancy"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []any{"model", "n_total", "sycophancy_index", "p_one_tailed", "reject_null", "cohens_d", "effect", "status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, key := range modelKeys(report) {
		h1 := report.ByModel[key].Sycophancy
		status := "ok"
		if h1.Insufficient() {
			status = h1.Error
		}
		row := []any{key, h1.NTotal, h1.SycophancyIndex, h1.PValueOneTailed, h1.RejectNull, h1.CohensD, h1.EffectInterpretation, status}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeAdversarialSheet(f *excelize.File, report *hypothesis.Report) error {
	const sheet = "H2 Adversarial"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	header := []any{"model", "mode", "n_neutral", "n_adversarial", "difference", "t", "p_one_tailed", "reject_null", "cohens_d", "status"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, key := range modelKeys(report) {
		h2 := report.ByModel[key].Adversarial
		status := "ok"
		if h2.Insufficient() {
			status = h2.Error
		}
		row := []any{key, h2.Mode, h2.NNeutral, h2.NAdversarial, h2.Difference, h2.TStatistic, h2.PValueOneTailed, h2.RejectNull, h2.CohensD, status}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func writeCrossModelSheet(f *excelize.File, report *hypothesis.Report) error {
	const sheet = "H3 Cross-Model"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	if report.CrossModel == nil || report.CrossModel.Insufficient() {
		note := []any{"cross-model comparison unavailable"}
		if report.CrossModel != nil {
			note = append(note, report.CrossModel.Error)
		}
		return f.SetSheetRow(sheet, "A1", &note)
	}

	header := []any{"rank", "model", "sycophancy_index", "n"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range report.CrossModel.Ranking {
		row := []any{i + 1, r.Model, r.SycophancyIndex, r.N}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}
