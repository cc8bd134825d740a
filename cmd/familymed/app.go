package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/CamiMaidana/FamilyMed/internal/api"
	"github.com/CamiMaidana/FamilyMed/internal/domain"
	"github.com/CamiMaidana/FamilyMed/internal/screens"
	"github.com/CamiMaidana/FamilyMed/internal/session"
)

// app drives the screens over a line-based terminal loop. One action, one
// request, one re-render; nothing runs in the background.
type app struct {
	sessions  session.Store
	logger    *zap.Logger
	login     *screens.LoginController
	patients  *screens.PatientsController
	dashboard *screens.DashboardController
	route     screens.Route
}

func newApp(client *api.Client, sessions session.Store, log *zap.Logger) *app {
	return &app{
		sessions:  sessions,
		logger:    log,
		login:     screens.NewLoginController(client, sessions, log.Named("login")),
		patients:  screens.NewPatientsController(client, log.Named("patients")),
		dashboard: screens.NewDashboardController(client, log.Named("dashboard")),
		route:     screens.Route{Name: screens.RoutePatients},
	}
}

func (a *app) run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "FamilyMed — control familiar de medicación")

	for {
		a.route = screens.Resolve(a.route, a.sessions)

		switch a.route.Name {
		case screens.RouteLogin:
			a.renderLogin(out)
		case screens.RoutePatients:
			a.patients.Load(ctx)
			a.renderPatients(out)
		case screens.RouteDashboard:
			a.dashboard.SetPatient(a.route.PatientID)
			a.dashboard.Load(ctx)
			a.renderDashboard(out)
		}

		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}
		a.dispatch(ctx, out, scanner, line)
	}
}

func (a *app) dispatch(ctx context.Context, out io.Writer, scanner *bufio.Scanner, line string) {
	switch a.route.Name {
	case screens.RouteLogin:
		a.handleLogin(ctx, out, scanner, line)
	case screens.RoutePatients:
		a.handlePatients(ctx, out, line)
	case screens.RouteDashboard:
		a.handleDashboard(ctx, out, scanner, line)
	}
}

// ----- login screen -----

func (a *app) renderLogin(out io.Writer) {
	fmt.Fprintln(out, "\n== Ingresar ==")
	if a.login.Err != "" {
		fmt.Fprintln(out, "⚠️ ", a.login.Err)
	}
	fmt.Fprintln(out, "Commands: login | register | quit")
}

func (a *app) handleLogin(ctx context.Context, out io.Writer, scanner *bufio.Scanner, line string) {
	switch line {
	case "login":
		a.login.Mode = screens.ModeLogin
		a.login.Email = prompt(out, scanner, "Email")
		a.login.Password = prompt(out, scanner, "Contraseña")
	case "register":
		a.login.Mode = screens.ModeRegister
		a.login.Name = prompt(out, scanner, "Tu nombre (opcional)")
		a.login.GroupName = prompt(out, scanner, "Nombre del grupo")
		a.login.Email = prompt(out, scanner, "Email")
		a.login.Password = prompt(out, scanner, "Contraseña (mín 6)")
	default:
		fmt.Fprintln(out, "Unknown command")
		return
	}
	if route, ok := a.login.Submit(ctx); ok {
		a.route = route
	}
}

// ----- patients screen -----

func (a *app) renderPatients(out io.Writer) {
	fmt.Fprintln(out, "\n== Pacientes ==")
	if a.patients.Err != "" {
		fmt.Fprintln(out, "⚠️ ", a.patients.Err)
	}
	if len(a.patients.Patients) == 0 {
		fmt.Fprintln(out, "No hay pacientes todavía.")
	}
	for i, p := range a.patients.Patients {
		fmt.Fprintf(out, "  [%d] %s  (%s)\n", i+1, p.DisplayName, p.Timezone)
	}
	fmt.Fprintln(out, "Commands: open <n> | new <nombre> | reload | logout | quit")
}

func (a *app) handlePatients(ctx context.Context, out io.Writer, line string) {
	cmd, rest, _ := strings.Cut(line, " ")
	switch cmd {
	case "open":
		if p, ok := a.patientAt(rest); ok {
			a.route = screens.Route{Name: screens.RouteDashboard, PatientID: p.ID}
		} else {
			fmt.Fprintln(out, "Unknown patient")
		}
	case "new":
		a.patients.CreateName = rest
		a.patients.Create(ctx)
	case "reload":
		// Next loop iteration reloads anyway.
	case "logout":
		a.route = screens.Logout(a.sessions)
	default:
		fmt.Fprintln(out, "Unknown command")
	}
}

func (a *app) patientAt(arg string) (domain.Patient, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || n < 1 || n > len(a.patients.Patients) {
		return domain.Patient{}, false
	}
	return a.patients.Patients[n-1], true
}

// ----- dashboard screen -----

func (a *app) renderDashboard(out io.Writer) {
	d := a.dashboard
	fmt.Fprintln(out)
	if d.Err != "" {
		fmt.Fprintln(out, "⚠️ ", d.Err)
	}
	if d.Data == nil {
		fmt.Fprintln(out, "Commands: back | reload | logout | quit")
		return
	}

	fmt.Fprintf(out, "== %s ==  (zona horaria: %s)\n", d.Data.Patient.DisplayName, d.Data.Patient.Timezone)

	fmt.Fprintln(out, "Contactos de alerta:")
	if len(d.Data.Patient.Contacts) == 0 {
		fmt.Fprintln(out, "  (ninguno)")
	}
	for i, c := range d.Data.Patient.Contacts {
		state := "activo"
		if !c.Enabled {
			state = "inactivo"
		}
		fmt.Fprintf(out, "  [%d] %s (%s)\n", i+1, c.Email, state)
	}

	fmt.Fprintln(out, "Medicamentos:")
	if len(d.Data.Medications) == 0 {
		fmt.Fprintln(out, "  Todavía no cargaste medicamentos.")
	}
	for i, m := range d.Data.Medications {
		fmt.Fprintf(out, "  [%d] %s  [%s: %d días]\n", i+1, m.Name, screens.SeverityFor(m.DaysRemaining), m.DaysRemaining)
		fmt.Fprintf(out, "      cada %dh • dosis %.2f • stock %.2f\n", m.IntervalHours, m.DoseQty, m.StockQty)
		fmt.Fprintf(out, "      última toma: %s • próxima: %s%s\n",
			fmtTime(m.LastTakenAt), fmtTime(m.NextDueAt), snoozeSuffix(m.SnoozedUntil))
	}

	fmt.Fprintln(out, "Commands: take <n> | stock <n> <qty> [nota] | snooze <n> <min> | contact add <email> | contact rm <n> | med new | back | logout | quit")
}

func (a *app) handleDashboard(ctx context.Context, out io.Writer, scanner *bufio.Scanner, line string) {
	d := a.dashboard
	fields := strings.Fields(line)
	var actionErr error

	switch fields[0] {
	case "back":
		a.route = screens.Route{Name: screens.RoutePatients}
		return
	case "logout":
		a.route = screens.Logout(a.sessions)
		return
	case "reload":
		return
	case "take":
		if m, ok := a.medicationAt(fields[1:]); ok {
			actionErr = d.Take(ctx, m.ID)
		}
	case "snooze":
		if m, ok := a.medicationAt(fields[1:]); ok && len(fields) >= 3 {
			minutes, _ := strconv.Atoi(fields[2])
			actionErr = d.Snooze(ctx, m.ID, minutes)
		}
	case "stock":
		if m, ok := a.medicationAt(fields[1:]); ok && len(fields) >= 3 {
			qty, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				fmt.Fprintln(out, "Cantidad inválida")
				return
			}
			note := strings.Join(fields[3:], " ")
			actionErr = d.AddStock(ctx, m.ID, qty, note)
		}
	case "contact":
		if len(fields) >= 3 && fields[1] == "add" {
			actionErr = d.AddContact(ctx, fields[2])
		} else if len(fields) >= 3 && fields[1] == "rm" {
			if c, ok := a.contactAt(fields[2]); ok {
				actionErr = d.RemoveContact(ctx, c.ID)
			}
		}
	case "med":
		if len(fields) >= 2 && fields[1] == "new" {
			actionErr = a.newMedication(ctx, out, scanner)
		}
	default:
		fmt.Fprintln(out, "Unknown command")
		return
	}

	// Action failures are surfaced once, alert-style; the rendered state stays
	// whatever the last reload produced.
	if actionErr != nil {
		fmt.Fprintln(out, "⚠️ ", actionErr)
	}
}

func (a *app) newMedication(ctx context.Context, out io.Writer, scanner *bufio.Scanner) error {
	form := screens.MedicationForm{Name: prompt(out, scanner, "Nombre (ej: Diusartan)")}
	form.IntervalHours, _ = strconv.Atoi(prompt(out, scanner, "Cada cuántas horas"))
	form.DoseQty, _ = strconv.ParseFloat(prompt(out, scanner, "Dosis por toma (0.5 / 1 / 2)"), 64)
	form.StockQty, _ = strconv.ParseFloat(prompt(out, scanner, "Stock inicial"), 64)
	if raw := prompt(out, scanner, "Primera toma RFC3339 (vacío = ahora + intervalo)"); raw != "" {
		due, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fmt.Errorf("fecha inválida: %w", err)
		}
		form.FirstDueAt = &due
	}
	form.Notes = prompt(out, scanner, "Notas (opcional)")
	return a.dashboard.CreateMedication(ctx, form)
}

func (a *app) medicationAt(args []string) (domain.Medication, bool) {
	if a.dashboard.Data == nil || len(args) == 0 {
		return domain.Medication{}, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.dashboard.Data.Medications) {
		return domain.Medication{}, false
	}
	return a.dashboard.Data.Medications[n-1], true
}

func (a *app) contactAt(arg string) (domain.Contact, bool) {
	if a.dashboard.Data == nil {
		return domain.Contact{}, false
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(a.dashboard.Data.Patient.Contacts) {
		return domain.Contact{}, false
	}
	return a.dashboard.Data.Patient.Contacts[n-1], true
}

func prompt(out io.Writer, scanner *bufio.Scanner, label string) string {
	fmt.Fprintf(out, "%s: ", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func fmtTime(t *time.Time) string {
	if t == nil {
		return "—"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func snoozeSuffix(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf(" (pospuesto hasta %s)", fmtTime(t))
}
