package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"farm-market/basket"
	"farm-market/client"
	"farm-market/listing"
	"farm-market/models"
)

type productsMsg []models.Product

type errMsg struct {
	err error
}

type shopMode int

const (
	modeBrowse shopMode = iota
	modeSearch
	modeQuantity
)

// ShopModel is the buyer's marketplace view: a filterable, sortable product
// list next to the session basket and mock balance.
type ShopModel struct {
	api    *client.Client
	basket *basket.Basket

	products []models.Product
	visible  []models.Product
	cursor   int

	mode     shopMode
	search   textinput.Model
	quantity textinput.Model

	categories  []string
	categoryIdx int
	sortOptions []string
	sortIdx     int

	loading bool
	status  string
	width   int
	height  int
}

func NewShopModel(api *client.Client, b *basket.Basket) ShopModel {
	search := textinput.New()
	search.Placeholder = "Search by name or description"
	search.CharLimit = 100

	quantity := textinput.New()
	quantity.Placeholder = "1"
	quantity.CharLimit = 5

	categories := []string{listing.CategoryAll}
	for _, c := range models.Categories {
		categories = append(categories, c.Name)
	}

	return ShopModel{
		api:         api,
		basket:      b,
		loading:     true,
		search:      search,
		quantity:    quantity,
		categories:  categories,
		sortOptions: listing.SortOptions(),
		width:       100,
		height:      30,
	}
}

func (m ShopModel) Init() tea.Cmd {
	return fetchProductsCmd(m.api)
}

func fetchProductsCmd(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		products, err := api.Products(context.Background())
		if err != nil {
			return errMsg{err: err}
		}
		return productsMsg(products)
	}
}

func (m ShopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case productsMsg:
		m.loading = false
		m.products = msg
		m.refreshVisible()
		return m, nil

	case errMsg:
		m.loading = false
		m.status = warnStyle.Render("Error: " + msg.err.Error())
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeSearch:
			return m.updateSearch(msg)
		case modeQuantity:
			return m.updateQuantity(msg)
		default:
			return m.updateBrowse(msg)
		}
	}
	return m, nil
}

func (m ShopModel) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "/":
		m.mode = modeSearch
		m.search.Focus()
		return m, textinput.Blink
	case "c":
		m.categoryIdx = (m.categoryIdx + 1) % len(m.categories)
		m.refreshVisible()
	case "s":
		m.sortIdx = (m.sortIdx + 1) % len(m.sortOptions)
		m.refreshVisible()
	case "r":
		m.loading = true
		m.status = ""
		return m, fetchProductsCmd(m.api)
	case "enter", "a":
		if len(m.visible) == 0 {
			return m, nil
		}
		m.mode = modeQuantity
		m.quantity.SetValue("")
		m.quantity.Focus()
		return m, textinput.Blink
	case "C":
		m.basket.Clear()
		m.status = statusStyle.Render("Basket cleared")
	case "x":
		return m.checkout()
	}
	return m, nil
}

func (m ShopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.mode = modeBrowse
		m.search.Blur()
		m.refreshVisible()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refreshVisible()
	return m, cmd
}

func (m ShopModel) updateQuantity(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.mode = modeBrowse
		m.quantity.Blur()
		return m, nil
	case tea.KeyEnter:
		m.mode = modeBrowse
		m.quantity.Blur()

		raw := strings.TrimSpace(m.quantity.Value())
		if raw == "" {
			raw = "1"
		}
		qty, err := strconv.Atoi(raw)
		if err != nil || qty < 1 {
			m.status = warnStyle.Render("Quantity must be at least 1")
			return m, nil
		}

		// The list can empty under the prompt when a reload lands meanwhile.
		if len(m.visible) == 0 {
			m.status = warnStyle.Render("Product is no longer listed")
			return m, nil
		}
		product := m.visible[m.cursor]
		if err := m.basket.Add(product, qty); err != nil {
			m.status = warnStyle.Render(err.Error())
			return m, nil
		}
		m.status = statusStyle.Render(fmt.Sprintf("Added %d x %s", qty, product.Name))
		return m, nil
	}
	var cmd tea.Cmd
	m.quantity, cmd = m.quantity.Update(msg)
	return m, cmd
}

func (m ShopModel) checkout() (tea.Model, tea.Cmd) {
	if m.basket.Empty() {
		m.status = dimStyle.Render("Basket is empty")
		return m, nil
	}
	total := m.basket.Total()
	if err := m.basket.Checkout(); err != nil {
		if errors.Is(err, basket.ErrInsufficientBalance) {
			m.status = warnStyle.Render("Insufficient balance: you do not have enough balance to place this order")
			return m, nil
		}
		m.status = warnStyle.Render(err.Error())
		return m, nil
	}
	m.status = statusStyle.Render(fmt.Sprintf("Order placed for $%.2f. New balance: $%.2f", total, m.basket.Balance()))
	return m, nil
}

// refreshVisible reapplies the current filter and sort. The cursor is clamped
// so it always points at a real row.
func (m *ShopModel) refreshVisible() {
	m.visible = listing.Filter(m.products, listing.Query{
		Text:     m.search.Value(),
		Category: m.categories[m.categoryIdx],
	})
	m.visible = listing.Sort(m.visible, m.sortOptions[m.sortIdx])
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m ShopModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Farm Market"))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  Balance: $%.2f", m.basket.Balance())))
	b.WriteString("\n\n")

	b.WriteString(accentStyle.Render(fmt.Sprintf("Category: %s  Sort: %s",
		m.categories[m.categoryIdx], m.sortOptions[m.sortIdx])))
	b.WriteString("\n")
	if m.mode == modeSearch || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("  Loading products..."))
		b.WriteString("\n")
	case len(m.visible) == 0:
		b.WriteString(dimStyle.Render("  No products found."))
		b.WriteString("\n")
	default:
		for i, p := range m.visible {
			row := fmt.Sprintf("#%d %s  $%.2f  (%s, %d available)",
				p.ID, p.Name, p.Price, models.CategoryName(p.CategoryID), p.Quantity)
			if i == m.cursor {
				row = selectedStyle.Render("> " + row)
			} else {
				row = "  " + row
			}
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Basket"))
	b.WriteString("\n")
	if m.basket.Empty() {
		b.WriteString(dimStyle.Render("  (empty)"))
		b.WriteString("\n")
	} else {
		for _, line := range m.basket.Lines() {
			b.WriteString(fmt.Sprintf("  %s x %d  $%.2f\n",
				line.Product.Name, line.Quantity, line.Subtotal()))
		}
		b.WriteString(statusStyle.Render(fmt.Sprintf("  Total: $%.2f", m.basket.Total())))
		b.WriteString("\n")
	}

	if m.mode == modeQuantity {
		b.WriteString("\nQuantity: ")
		b.WriteString(m.quantity.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter: add to basket • /: search • c: category • s: sort • x: place order • C: clear basket • r: reload • q: quit"))
	return b.String()
}
