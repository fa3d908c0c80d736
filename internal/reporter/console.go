// Package reporter imprime o resumo do relatório de vendas em formato texto.
package reporter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/sales-insights/internal/domain"
	"github.com/vfg2006/sales-insights/pkg/utils"
)

const bannerWidth = 50

// Console escreve o relatório em um io.Writer (normalmente os.Stdout)
type Console struct {
	out io.Writer
	err error
}

func NewConsole(out io.Writer) *Console {
	return &Console{out: out}
}

// Print escreve o bloco de carga seguido dos insights
func (c *Console) Print(report *domain.SalesReport) error {
	if err := c.DataLoaded(report); err != nil {
		return err
	}
	return c.Insights(report.Insights)
}

// DataLoaded escreve o nome do dataset, o formato e as primeiras linhas
func (c *Console) DataLoaded(report *domain.SalesReport) error {
	c.printf("Data loaded successfully!\n")
	if report.Dataset != "" {
		c.printf("Dataset: %s\n", report.Dataset)
	}
	c.printf("Shape: (%d, %d)\n", report.RecordCount, len(domain.RequiredFields))

	if len(report.Preview) == 0 {
		return c.flush()
	}

	c.printf("\nFirst few rows:\n")

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(domain.RequiredFields, "\t"))
	for i, record := range report.Preview {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t\n",
			i,
			record.Product,
			record.Category,
			record.Month,
			record.UnitsSold,
			humanize.Ftoa(record.Revenue),
		)
	}
	if err := tw.Flush(); err != nil && c.err == nil {
		c.err = err
	}

	return c.flush()
}

// Insights escreve o resumo de vendas, os destaques e a participação por categoria
func (c *Console) Insights(insights domain.Insights) error {
	banner := strings.Repeat("=", bannerWidth)
	c.printf("\n%s\nDATA INSIGHTS\n%s\n", banner, banner)

	c.printf("\n📊 SALES SUMMARY:\n")
	c.printf("Total Revenue: %s\n", Currency(insights.TotalRevenue))
	c.printf("Total Units Sold: %s\n", humanize.Comma(insights.TotalUnits))
	c.printf("Average Revenue per Unit: $%.2f\n", insights.AvgRevenuePerUnit)

	c.printf("\n🏆 TOP PERFORMERS:\n")
	c.printf("Best Product by Revenue: %s (%s)\n", insights.BestProduct.Product, Currency(insights.BestProduct.Revenue))
	c.printf("Best Month by Revenue: %s (%s)\n", insights.BestMonth.Month, Currency(insights.BestMonth.Revenue))

	c.printf("\n📈 CATEGORY BREAKDOWN:\n")
	for _, share := range insights.CategoryShares {
		c.printf("%s: %s (%.1f%%)\n", share.Category, Currency(share.Revenue), share.Percentage)
	}

	return c.flush()
}

// Currency formata um valor em dólares com separador de milhar, ex.: 1234567.5 -> "$1,234,567.5"
func Currency(value float64) string {
	return "$" + humanize.Commaf(utils.RoundWithTwoDecimalPlace(value))
}

func (c *Console) printf(format string, args ...any) {
	if c.err != nil {
		return
	}
	_, c.err = fmt.Fprintf(c.out, format, args...)
}

// flush devolve o primeiro erro de escrita e limpa o estado para a próxima chamada
func (c *Console) flush() error {
	err := c.err
	c.err = nil
	return err
}
