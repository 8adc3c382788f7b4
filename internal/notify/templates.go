package notify

import (
	"fmt"
	"time"

	"github.com/fransaa81/glowup-dermoestetica/internal/booking"
)

var spanishDays = [...]string{
	"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado",
}

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// formatDayES renders a date the way the mails show it, e.g.
// "martes 10 de junio de 2025".
func formatDayES(t time.Time) string {
	return fmt.Sprintf("%s %d de %s de %d",
		spanishDays[int(t.Weekday())], t.Day(), spanishMonths[int(t.Month())-1], t.Year())
}

func confirmationBody(r booking.Reservation) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1 style="color: #8B4240;">Glow up</h1>
			<p style="color: #8B4240;">Estética Cosmiátrica</p>
			<h2>¡Tu turno ha sido confirmado!</h2>
			<p>Hola %s,</p>
			<p>Te confirmamos que tu turno ha sido reservado correctamente.</p>
			<h3>Detalles del turno:</h3>
			<ul>
				<li><strong>Fecha:</strong> %s</li>
				<li><strong>Horario:</strong> %s</li>
				<li><strong>Nombre:</strong> %s</li>
				<li><strong>DNI:</strong> %s</li>
			</ul>
			<p>Si necesitas modificar o cancelar tu turno, por favor contáctanos.</p>
			<p>Te enviaremos un recordatorio 24 horas antes de tu turno.</p>
		</div>
	`, r.FullName, formatDayES(r.Day), r.Slot, r.FullName, r.NationalID)
}

func reminderBody(r booking.Reservation) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
			<h1 style="color: #8B4240;">Glow up</h1>
			<p style="color: #8B4240;">Estética Cosmiátrica</p>
			<h2>¡Recordatorio de turno!</h2>
			<p>Hola %s,</p>
			<p>Te recordamos que <strong>mañana</strong> tienes un turno en nuestra estética.</p>
			<h3>Detalles del turno:</h3>
			<ul>
				<li><strong>Fecha:</strong> %s</li>
				<li><strong>Horario:</strong> %s</li>
			</ul>
			<p>Te esperamos. Si no podés asistir, avisanos con anticipación.</p>
		</div>
	`, r.FullName, formatDayES(r.Day), r.Slot)
}
