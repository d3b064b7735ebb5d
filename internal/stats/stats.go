// Package stats implementa os resumos estatísticos resistentes a
// outliers usados pelo pricing comunitário e pelos relatórios
// trimestrais.
package stats

import (
	"sort"

	"github.com/vfg2006/creator-pricing-api/internal/domain"
)

// minSampleForClipping é o tamanho mínimo de amostra a partir do qual os
// extremos são descartados. Abaixo disso o corte removeria dados demais.
const minSampleForClipping = 5

// Avg retorna a média simples, ou nil para amostra vazia ("sem dados" é
// diferente de zero).
func Avg(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	return &avg
}

// Median retorna a mediana simples, ou nil para amostra vazia.
func Median(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return &median
}

// clipOutliers recebe a amostra já ordenada e descarta os 10% inferiores
// e superiores por índice: fatia [floor(n*0.1), floor(n*0.9)). A
// aritmética de piso é intencional e os cenários numéricos downstream
// dependem dela; não substituir por um algoritmo de percentil.
func clipOutliers(sorted []float64) []float64 {
	if len(sorted) < minSampleForClipping {
		return sorted
	}
	n := len(sorted)
	lower := int(float64(n) * 0.1)
	upper := int(float64(n) * 0.9)
	if upper <= lower {
		return sorted
	}
	clipped := sorted[lower:upper]
	if len(clipped) == 0 {
		return sorted
	}
	return clipped
}

// Summarize produz o resumo resistente a outliers de uma amostra de
// fees: Count/Min/Max sobre a amostra completa (os extremos verdadeiros
// continuam visíveis), Avg/Median sobre a amostra aparada.
func Summarize(values []float64) domain.FeeSummary {
	if len(values) == 0 {
		return domain.FeeSummary{Count: 0}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	clipped := clipOutliers(sorted)
	min := sorted[0]
	max := sorted[len(sorted)-1]

	return domain.FeeSummary{
		Count:  len(sorted),
		Avg:    Avg(clipped),
		Median: Median(clipped),
		Min:    &min,
		Max:    &max,
	}
}

// SummarizeCPM converte pares (fee, views) em CPMs (fee/views * 1000) e
// resume da mesma forma que Summarize. Pares sem views positivas ou sem
// fee são excluídos em silêncio: registro incompleto não é erro.
func SummarizeCPM(fees []*float64, views []*int64) domain.CpmSummary {
	cpms := make([]float64, 0, len(fees))
	for i, fee := range fees {
		if i >= len(views) {
			break
		}
		view := views[i]
		if view == nil || *view <= 0 {
			continue
		}
		if fee == nil {
			continue
		}
		cpms = append(cpms, (*fee / float64(*view)) * 1000)
	}

	if len(cpms) == 0 {
		return domain.CpmSummary{Count: 0}
	}

	sort.Float64s(cpms)
	clipped := clipOutliers(cpms)
	min := cpms[0]
	max := cpms[len(cpms)-1]

	return domain.CpmSummary{
		Count:  len(cpms),
		Avg:    Avg(clipped),
		Median: Median(clipped),
		Min:    &min,
		Max:    &max,
	}
}
