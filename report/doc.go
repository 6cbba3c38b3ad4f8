// Package report turns comparison outcomes into human-facing output: an
// aligned text table, the per-strategy console listing, and an XLSX
// workbook written with excelize.
package report
