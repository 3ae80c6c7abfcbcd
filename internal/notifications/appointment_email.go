package notifications

import (
	"bytes"
	"html/template"
)

const appointmentConfirmationTemplate = `<div style="font-family: sans-serif; color: #333;">
  <h1>Olá, {{.ClientName}}!</h1>
  <p>Seu estilo está garantido. Confira os detalhes:</p>
  <div style="border: 1px solid #ddd; padding: 20px; border-radius: 8px; background: #f9f9f9;">
    <p><strong>💈 Profissional:</strong> {{.BarberName}}</p>
    <p><strong>✂️ Serviço:</strong> {{.ServiceName}}</p>
    <p><strong>📅 Data:</strong> {{.Date}} às {{.Time}}</p>
  </div>
  <p>Se precisar remarcar, acesse sua conta no app.</p>
  <p>Atenciosamente,<br>Equipe Hartmann</p>
</div>`

var appointmentConfirmationTmpl = template.Must(
	template.New("appointment_confirmation").Parse(appointmentConfirmationTemplate),
)

type ConfirmationData struct {
	ClientName  string
	ClientEmail string
	BarberName  string
	ServiceName string
	Date        string // "02/01/2006"
	Time        string // "15:04"
}

func buildAppointmentConfirmationHTML(data ConfirmationData) (string, error) {
	var buf bytes.Buffer
	if err := appointmentConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
