package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tavolo/internal/model"
	"tavolo/internal/service"
	"tavolo/internal/util"
	"tavolo/internal/workflow"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Services bundles everything the screens call into.
type Services struct {
	Users        *service.Users
	Restaurants  *service.Restaurants
	Tables       *service.Tables
	Customers    *service.Customers
	Reservations *service.Reservations
	Session      *service.Session
	Auth         *workflow.Auth
	Venues       *workflow.Venues
	Bookings     *workflow.Bookings
}

// Model is the root Bubble Tea model.
type Model struct {
	svc    Services
	screen model.Screen
	mode   model.Mode
	user   *model.User

	width  int
	height int

	error string
	info  string

	// Screen models
	login            *LoginModel
	register         *RegisterModel
	restaurants      *RestaurantsModel
	restaurantForm   *RestaurantFormModel
	restaurantDetail *RestaurantDetailModel
	tables           *TablesModel
	reservations     *ReservationsModel
	reservationForm  *ReservationFormModel

	keys KeyMap
}

// New creates a new root model.
func New(svc Services) Model {
	return Model{
		svc:    svc,
		screen: model.ScreenLogin,
		mode:   model.ModeInsert,
		login:  NewLoginModel(svc.Auth),
		keys:   DefaultKeyMap(),
	}
}

// Init restores a persisted session, if any.
func (m Model) Init() tea.Cmd {
	return restoreSessionCmd(m.svc.Session)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.mode == model.ModeInsert {
			return m.handleInsertMode(msg)
		}
		return m.handleNavMode(msg)

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		m.info = ""
		return m, nil

	case model.SessionRestoredMsg:
		if msg.Found {
			user := msg.User
			m.user = &user
			m.mode = model.ModeNav
			m.screen = model.ScreenRestaurants
			return m, loadRestaurantsCmd(m.svc, user)
		}
		return m, nil

	case model.AuthenticatedMsg:
		user := msg.User
		m.user = &user
		m.mode = model.ModeNav
		m.screen = model.ScreenRestaurants
		m.login = NewLoginModel(m.svc.Auth)
		m.register = nil
		m.error = ""
		m.info = "Welcome, " + user.Name
		return m, loadRestaurantsCmd(m.svc, user)

	case model.LoggedOutMsg:
		m.user = nil
		m.mode = model.ModeInsert
		m.screen = model.ScreenLogin
		m.login = NewLoginModel(m.svc.Auth)
		m.restaurants = nil
		m.reservations = nil
		m.info = "Signed out"
		m.error = ""
		return m, nil

	case model.RestaurantsLoadedMsg:
		m.restaurants = NewRestaurantsModel(msg.Restaurants)
		m.error = ""
		return m, nil

	case model.RestaurantSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenRestaurants
		m.restaurantForm = nil
		m.info = "Restaurant saved"
		m.error = ""
		return m, loadRestaurantsCmd(m.svc, *m.user)

	case model.RestaurantDeletedMsg:
		m.screen = model.ScreenRestaurants
		m.restaurantDetail = nil
		m.info = "Restaurant deleted"
		m.error = ""
		return m, loadRestaurantsCmd(m.svc, *m.user)

	case model.RestaurantDetailLoadedMsg:
		m.restaurantDetail = NewRestaurantDetailModel(msg.Restaurant, msg.Tables)
		m.screen = model.ScreenRestaurantDetail
		m.error = ""
		return m, nil

	case model.TablesLoadedMsg:
		m.tables = NewTablesModel(m.svc.Venues, msg.Restaurant, msg.Tables)
		m.screen = model.ScreenTables
		m.error = ""
		return m, nil

	case model.TableSavedMsg:
		m.info = "Table saved"
		m.error = ""
		if m.tables != nil {
			return m, loadTablesCmd(m.svc, m.tables.restaurant)
		}
		return m, nil

	case model.TableDeletedMsg:
		m.info = "Table deleted"
		m.error = ""
		if m.tables != nil {
			return m, loadTablesCmd(m.svc, m.tables.restaurant)
		}
		return m, nil

	case reservationFormReadyMsg:
		m.reservationForm = NewReservationFormModel(m.svc.Bookings, msg.restaurant, msg.tables)
		m.mode = model.ModeInsert
		m.screen = model.ScreenReservationForm
		m.error = ""
		return m, nil

	case model.ReservationsLoadedMsg:
		m.reservations = NewReservationsModel(msg.Rows)
		m.error = ""
		return m, nil

	case model.ReservationSavedMsg:
		m.mode = model.ModeNav
		m.screen = model.ScreenReservations
		m.reservationForm = nil
		m.info = "Reservation saved"
		m.error = ""
		return m, loadReservationsCmd(m.svc)

	case model.FormCancelledMsg:
		m.mode = model.ModeNav
		m.restaurantForm = nil
		m.reservationForm = nil
		switch m.screen {
		case model.ScreenRestaurantForm:
			m.screen = model.ScreenRestaurants
		case model.ScreenReservationForm:
			m.screen = model.ScreenReservations
			if m.reservations == nil {
				return m, loadReservationsCmd(m.svc)
			}
		}
		return m, nil
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.user == nil {
		content := ""
		switch m.screen {
		case model.ScreenLogin:
			if m.login != nil {
				content = m.login.View(m.width, m.height-1)
			}
		case model.ScreenRegister:
			if m.register != nil {
				content = m.register.View(m.width, m.height-1)
			}
		}
		footer := RenderHelp(m.screen, model.ModeNav, m.width)
		if m.error != "" {
			banner := ErrorStyle.Width(m.width).Render("Error: " + m.error)
			return lipgloss.JoinVertical(lipgloss.Left, banner, content, footer)
		}
		return lipgloss.JoinVertical(lipgloss.Left, content, footer)
	}

	var content string
	var breadcrumbParts []string

	showTabs := m.screen == model.ScreenRestaurants || m.screen == model.ScreenReservations

	contentHeight := m.height - 4
	if showTabs {
		contentHeight -= 2
	}

	switch m.screen {
	case model.ScreenRestaurants:
		breadcrumbParts = []string{"Restaurants"}
		if m.restaurants != nil {
			content = m.restaurants.View(m.width, contentHeight)
		}
	case model.ScreenRestaurantForm:
		breadcrumbParts = []string{"Restaurants", "Form"}
		if m.restaurantForm != nil {
			content = m.restaurantForm.View(m.width, contentHeight)
		}
	case model.ScreenRestaurantDetail:
		breadcrumbParts = []string{"Restaurants", "Detail"}
		if m.restaurantDetail != nil {
			breadcrumbParts = []string{"Restaurants", m.restaurantDetail.restaurant.Name}
			content = m.restaurantDetail.View(m.width, contentHeight)
		}
	case model.ScreenTables:
		breadcrumbParts = []string{"Restaurants", "Tables"}
		if m.tables != nil {
			breadcrumbParts = []string{"Restaurants", m.tables.restaurant.Name, "Tables"}
			content = m.tables.View(m.width, contentHeight)
		}
	case model.ScreenReservations:
		breadcrumbParts = []string{"Reservations"}
		if m.reservations != nil {
			content = m.reservations.View(m.width, contentHeight)
		}
	case model.ScreenReservationForm:
		breadcrumbParts = []string{"Reservations", "New"}
		if m.reservationForm != nil {
			content = m.reservationForm.View(m.width, contentHeight)
		}
	}

	header := m.renderHeader(breadcrumbParts)
	footer := RenderHelp(m.screen, m.mode, m.width)

	content = lipgloss.NewStyle().Width(m.width).Height(contentHeight).Render(content)

	sections := []string{header}
	if showTabs {
		sections = append(sections, renderTabs(m.screen, m.width))
	}
	if m.error != "" {
		sections = append(sections, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		sections = append(sections, SuccessStyle.Width(m.width).Render(m.info))
	}
	sections = append(sections, content, footer)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderTabs(screen model.Screen, width int) string {
	tabs := []struct {
		name   string
		screen model.Screen
	}{
		{"Restaurants", model.ScreenRestaurants},
		{"Reservations", model.ScreenReservations},
	}

	var tabStrings []string
	for _, tab := range tabs {
		tabStyle := lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

		if screen == tab.screen {
			tabStyle = tabStyle.
				Foreground(ColorText).
				Bold(true).
				Underline(true)
		}

		tabStrings = append(tabStrings, tabStyle.Render(tab.name))
	}

	tabBar := lipgloss.JoinHorizontal(lipgloss.Left, tabStrings...)
	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 2).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorMuted).
		Render(tabBar)
}

func (m Model) renderHeader(breadcrumbParts []string) string {
	title := HeaderStyle.Render("tavolo")

	var breadcrumb string
	if len(breadcrumbParts) > 0 {
		separator := BreadcrumbStyle.Render(" › ")
		parts := make([]string, len(breadcrumbParts))
		for i, part := range breadcrumbParts {
			if i == len(breadcrumbParts)-1 {
				parts[i] = BreadcrumbActiveStyle.Render(part)
			} else {
				parts[i] = BreadcrumbStyle.Render(part)
			}
		}
		breadcrumb = separator + strings.Join(parts, separator)
	}

	left := "  " + title + breadcrumb

	right := ""
	if m.user != nil {
		right = BreadcrumbStyle.Render(m.user.Name+" ("+util.FormatRole(m.user.Role)+")") + "  "
	}

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := m.width - leftLen - rightLen
	if padding < 0 {
		padding = 0
	}

	return TitleStyle.Width(m.width).Render(left + strings.Repeat(" ", padding) + right)
}

// handleNavMode handles navigation mode input.
func (m Model) handleNavMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Logout) {
		return m, logoutCmd(m.svc.Auth)
	}

	switch m.screen {
	case model.ScreenRestaurants:
		return m.handleRestaurantsNav(msg)
	case model.ScreenRestaurantDetail:
		return m.handleRestaurantDetailNav(msg)
	case model.ScreenTables:
		return m.handleTablesNav(msg)
	case model.ScreenReservations:
		return m.handleReservationsNav(msg)
	}
	return m, nil
}

func (m Model) handleRestaurantsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.restaurants == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		m.screen = model.ScreenReservations
		if m.reservations == nil {
			return m, loadReservationsCmd(m.svc)
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.restaurants.MoveDown()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.restaurants.MoveUp()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.mode = model.ModeInsert
		m.screen = model.ScreenRestaurantForm
		m.restaurantForm = NewRestaurantFormModel(m.svc.Venues, m.user.ID)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		if r := m.restaurants.Selected(); r != nil {
			return m, loadRestaurantDetailCmd(m.svc, r.ID)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleRestaurantDetailNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.restaurantDetail == nil {
		return m, nil
	}
	restaurant := m.restaurantDetail.restaurant

	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = model.ScreenRestaurants
		m.restaurantDetail = nil
		return m, nil
	case key.Matches(msg, m.keys.Tables):
		return m, loadTablesCmd(m.svc, restaurant)
	case key.Matches(msg, m.keys.Book):
		return m, openReservationFormCmd(m.svc, restaurant)
	case key.Matches(msg, m.keys.Edit):
		m.mode = model.ModeInsert
		m.screen = model.ScreenRestaurantForm
		m.restaurantForm = NewRestaurantFormModel(m.svc.Venues, restaurant.OwnerID)
		m.restaurantForm.LoadRestaurant(restaurant)
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		return m, deleteRestaurantCmd(m.svc, restaurant.ID, workflow.Restrict)
	case key.Matches(msg, m.keys.ForceDelete):
		return m, deleteRestaurantCmd(m.svc, restaurant.ID, workflow.Cascade)
	}
	return m, nil
}

func (m Model) handleTablesNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tables == nil {
		return m, nil
	}

	if m.tables.Adding() {
		newTables, cmd := m.tables.UpdateAdd(msg)
		m.tables = &newTables
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Back):
		return m, loadRestaurantDetailCmd(m.svc, m.tables.restaurant.ID)
	case key.Matches(msg, m.keys.Down):
		m.tables.MoveDown()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.tables.MoveUp()
		return m, nil
	case key.Matches(msg, m.keys.Add):
		m.tables.StartAdd()
		return m, nil
	case key.Matches(msg, m.keys.Toggle):
		if t := m.tables.Selected(); t != nil {
			return m, toggleTableCmd(m.svc, t.ID, !t.IsAvailable)
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if t := m.tables.Selected(); t != nil {
			return m, deleteTableCmd(m.svc, t.ID, workflow.Restrict)
		}
		return m, nil
	case key.Matches(msg, m.keys.ForceDelete):
		if t := m.tables.Selected(); t != nil {
			return m, deleteTableCmd(m.svc, t.ID, workflow.Cascade)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleReservationsNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.reservations == nil {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab), key.Matches(msg, m.keys.PrevTab):
		m.screen = model.ScreenRestaurants
		if m.restaurants == nil {
			return m, loadRestaurantsCmd(m.svc, *m.user)
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.reservations.MoveDown()
		return m, nil
	case key.Matches(msg, m.keys.Up):
		m.reservations.MoveUp()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if row := m.reservations.Selected(); row != nil && row.Reservation.Status == model.StatusPending {
			return m, updateReservationStatusCmd(m.svc, row.Reservation.ID, model.StatusConfirmed)
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		if row := m.reservations.Selected(); row != nil &&
			(row.Reservation.Status == model.StatusPending || row.Reservation.Status == model.StatusConfirmed) {
			return m, updateReservationStatusCmd(m.svc, row.Reservation.ID, model.StatusCancelled)
		}
		return m, nil
	case key.Matches(msg, m.keys.Complete):
		if row := m.reservations.Selected(); row != nil && row.Reservation.Status == model.StatusConfirmed {
			return m, updateReservationStatusCmd(m.svc, row.Reservation.ID, model.StatusCompleted)
		}
		return m, nil
	}
	return m, nil
}

// handleInsertMode handles form input.
func (m Model) handleInsertMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case model.ScreenLogin:
		if msg.String() == "ctrl+n" {
			m.register = NewRegisterModel(m.svc.Auth)
			m.screen = model.ScreenRegister
			m.error = ""
			return m, nil
		}
		if m.login != nil {
			newLogin, cmd := m.login.Update(msg)
			m.login = &newLogin
			return m, cmd
		}
	case model.ScreenRegister:
		if msg.String() == "esc" {
			m.screen = model.ScreenLogin
			m.register = nil
			m.error = ""
			return m, nil
		}
		if m.register != nil {
			newRegister, cmd := m.register.Update(msg)
			m.register = &newRegister
			return m, cmd
		}
	case model.ScreenRestaurantForm:
		if m.restaurantForm != nil {
			newForm, cmd := m.restaurantForm.Update(msg)
			m.restaurantForm = &newForm
			return m, cmd
		}
	case model.ScreenReservationForm:
		if m.reservationForm != nil {
			newForm, cmd := m.reservationForm.Update(msg)
			m.reservationForm = &newForm
			return m, cmd
		}
	}
	return m, nil
}

// Commands

func restoreSessionCmd(session *service.Session) tea.Cmd {
	return func() tea.Msg {
		user, found, err := session.Current(context.Background())
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to restore session: %w", err)}
		}
		return model.SessionRestoredMsg{User: user, Found: found}
	}
}

func logoutCmd(auth *workflow.Auth) tea.Cmd {
	return func() tea.Msg {
		if err := auth.Logout(context.Background()); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.LoggedOutMsg{}
	}
}

func loadRestaurantsCmd(svc Services, user model.User) tea.Cmd {
	return func() tea.Msg {
		var (
			restaurants []model.Restaurant
			err         error
		)
		if user.Role == model.RoleRestaurantOwner {
			restaurants, err = svc.Restaurants.ByOwner(context.Background(), user.ID)
		} else {
			restaurants, err = svc.Restaurants.All(context.Background())
		}
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.RestaurantsLoadedMsg{Restaurants: restaurants}
	}
}

func loadRestaurantDetailCmd(svc Services, restaurantID string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		restaurant, ok, err := svc.Restaurants.ByID(ctx, restaurantID)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load restaurant: %w", err)}
		}
		if !ok {
			return model.ErrorMsg{Err: fmt.Errorf("restaurant no longer exists")}
		}
		tables, err := svc.Tables.ByRestaurant(ctx, restaurantID)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load tables: %w", err)}
		}
		return model.RestaurantDetailLoadedMsg{Restaurant: restaurant, Tables: tables}
	}
}

func loadTablesCmd(svc Services, restaurant model.Restaurant) tea.Cmd {
	return func() tea.Msg {
		tables, err := svc.Tables.ByRestaurant(context.Background(), restaurant.ID)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load tables: %w", err)}
		}
		return model.TablesLoadedMsg{Restaurant: restaurant, Tables: tables}
	}
}

func toggleTableCmd(svc Services, tableID string, isAvailable bool) tea.Cmd {
	return func() tea.Msg {
		table, err := svc.Tables.UpdateAvailability(context.Background(), tableID, isAvailable)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.TableSavedMsg{Table: table}
	}
}

func deleteTableCmd(svc Services, tableID string, policy workflow.DeletePolicy) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Venues.DeleteTable(context.Background(), tableID, policy); err != nil {
			if errors.Is(err, workflow.ErrHasDependents) {
				return model.ErrorMsg{Err: fmt.Errorf("table has reservations; press D to delete them too")}
			}
			return model.ErrorMsg{Err: err}
		}
		return model.TableDeletedMsg{ID: tableID}
	}
}

func deleteRestaurantCmd(svc Services, restaurantID string, policy workflow.DeletePolicy) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Venues.DeleteRestaurant(context.Background(), restaurantID, policy); err != nil {
			if errors.Is(err, workflow.ErrHasDependents) {
				return model.ErrorMsg{Err: fmt.Errorf("restaurant has tables or reservations; press D to delete them too")}
			}
			return model.ErrorMsg{Err: err}
		}
		return model.RestaurantDeletedMsg{ID: restaurantID}
	}
}

func openReservationFormCmd(svc Services, restaurant model.Restaurant) tea.Cmd {
	return func() tea.Msg {
		tables, err := svc.Tables.ByRestaurant(context.Background(), restaurant.ID)
		if err != nil {
			return model.ErrorMsg{Err: fmt.Errorf("failed to load tables: %w", err)}
		}
		available := tables[:0]
		for _, t := range tables {
			if t.IsAvailable {
				available = append(available, t)
			}
		}
		return reservationFormReadyMsg{restaurant: restaurant, tables: available}
	}
}

func loadReservationsCmd(svc Services) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		reservations, err := svc.Reservations.All(ctx)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		restaurants, err := svc.Restaurants.All(ctx)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		customers, err := svc.Customers.All(ctx)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		tables, err := svc.Tables.All(ctx)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}

		restaurantNames := make(map[string]string, len(restaurants))
		for _, r := range restaurants {
			restaurantNames[r.ID] = r.Name
		}
		customerNames := make(map[string]string, len(customers))
		for _, c := range customers {
			customerNames[c.ID] = c.Name
		}
		tableNumbers := make(map[string]int, len(tables))
		for _, t := range tables {
			tableNumbers[t.ID] = t.Number
		}

		rows := make([]model.ReservationRow, 0, len(reservations))
		for _, res := range reservations {
			rows = append(rows, model.ReservationRow{
				Reservation:    res,
				RestaurantName: restaurantNames[res.RestaurantID],
				CustomerName:   customerNames[res.CustomerID],
				TableNumber:    tableNumbers[res.TableID],
			})
		}
		return model.ReservationsLoadedMsg{Rows: rows}
	}
}

func updateReservationStatusCmd(svc Services, reservationID string, status model.ReservationStatus) tea.Cmd {
	return func() tea.Msg {
		reservation, err := svc.Bookings.UpdateStatus(context.Background(), reservationID, status)
		if err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.ReservationSavedMsg{Reservation: reservation}
	}
}

// reservationFormReadyMsg carries the prepared form context.
type reservationFormReadyMsg struct {
	restaurant model.Restaurant
	tables     []model.Table
}

