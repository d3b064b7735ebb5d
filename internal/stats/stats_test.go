package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func int64Ptr(i int64) *int64     { return &i }

func TestSummarize_AmostraVazia(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, 0, summary.Count)
	assert.Nil(t, summary.Avg)
	assert.Nil(t, summary.Median)
	assert.Nil(t, summary.Min)
	assert.Nil(t, summary.Max)
}

func TestSummarize_AmostraPequenaNaoApara(t *testing.T) {
	// Menos de 5 valores: nenhum corte de outlier acontece
	summary := Summarize([]float64{100, 200, 5000, 50})

	assert.Equal(t, 4, summary.Count)
	require.NotNil(t, summary.Avg)
	assert.InDelta(t, 1337.5, *summary.Avg, 0.0001)
	require.NotNil(t, summary.Median)
	assert.InDelta(t, 150, *summary.Median, 0.0001)
	require.NotNil(t, summary.Min)
	assert.Equal(t, 50.0, *summary.Min)
	require.NotNil(t, summary.Max)
	assert.Equal(t, 5000.0, *summary.Max)
}

func TestSummarize_AparaExtremosPorIndice(t *testing.T) {
	// n=6: floor(6*0.1)=0 e floor(6*0.9)=5, a fatia [0:5) mantém os
	// índices 0..4 e descarta apenas o extremo superior
	summary := Summarize([]float64{10, 20, 30, 40, 50, 1000})

	assert.Equal(t, 6, summary.Count)
	require.NotNil(t, summary.Min)
	assert.Equal(t, 10.0, *summary.Min)
	require.NotNil(t, summary.Max)
	assert.Equal(t, 1000.0, *summary.Max)

	// Aparado: sobra [10,20,30,40,50] -> avg 30, median 30
	require.NotNil(t, summary.Avg)
	assert.InDelta(t, 30, *summary.Avg, 0.0001)
	require.NotNil(t, summary.Median)
	assert.InDelta(t, 30, *summary.Median, 0.0001)
}

func TestSummarize_AmostraMaiorAparaDosDoisLados(t *testing.T) {
	// n=10: fatia [1:9) descarta o menor e o maior valor
	values := []float64{1, 10, 20, 30, 40, 50, 60, 70, 80, 9000}
	summary := Summarize(values)

	assert.Equal(t, 10, summary.Count)
	require.NotNil(t, summary.Min)
	assert.Equal(t, 1.0, *summary.Min)
	require.NotNil(t, summary.Max)
	assert.Equal(t, 9000.0, *summary.Max)

	// Aparado: [10..80] -> avg 45, median 45
	require.NotNil(t, summary.Avg)
	assert.InDelta(t, 45, *summary.Avg, 0.0001)
	require.NotNil(t, summary.Median)
	assert.InDelta(t, 45, *summary.Median, 0.0001)
}

func TestSummarize_NaoOrdenadaProduzMesmoResultado(t *testing.T) {
	a := Summarize([]float64{1000, 10, 50, 30, 20, 40})
	b := Summarize([]float64{10, 20, 30, 40, 50, 1000})

	assert.Equal(t, a, b)
}

func TestSummarizeCPM_FiltraParesInvalidos(t *testing.T) {
	fees := []*float64{
		floatPtr(500),  // 500/10000*1000 = 50
		floatPtr(300),  // sem views: excluído
		nil,            // sem fee: excluído
		floatPtr(1200), // views zero: excluído
		floatPtr(100),  // 100/5000*1000 = 20
	}
	views := []*int64{
		int64Ptr(10_000),
		nil,
		int64Ptr(8_000),
		int64Ptr(0),
		int64Ptr(5_000),
	}

	summary := SummarizeCPM(fees, views)

	assert.Equal(t, 2, summary.Count)
	require.NotNil(t, summary.Avg)
	assert.InDelta(t, 35, *summary.Avg, 0.0001)
	require.NotNil(t, summary.Min)
	assert.InDelta(t, 20, *summary.Min, 0.0001)
	require.NotNil(t, summary.Max)
	assert.InDelta(t, 50, *summary.Max, 0.0001)
}

func TestSummarizeCPM_TodosFiltradosSinalizaSemDados(t *testing.T) {
	summary := SummarizeCPM([]*float64{floatPtr(100)}, []*int64{nil})

	assert.Equal(t, 0, summary.Count)
	assert.Nil(t, summary.Avg)
	assert.Nil(t, summary.Median)
}

func TestAvgMedian_AuxiliaresSimples(t *testing.T) {
	assert.Nil(t, Avg(nil))
	assert.Nil(t, Median(nil))

	avg := Avg([]float64{10, 20, 30, 40})
	require.NotNil(t, avg)
	assert.InDelta(t, 25, *avg, 0.0001)

	medianEven := Median([]float64{40, 10, 30, 20})
	require.NotNil(t, medianEven)
	assert.InDelta(t, 25, *medianEven, 0.0001)

	medianOdd := Median([]float64{30, 10, 20})
	require.NotNil(t, medianOdd)
	assert.InDelta(t, 20, *medianOdd, 0.0001)
}
