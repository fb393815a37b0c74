package itinerary

import (
	"fmt"

	"github.com/instatrip/backend/internal/videolink"
)

// PlaceholderTranscript substitutes the transcript when audio extraction or
// transcription failed; generation still proceeds with it.
const PlaceholderTranscript = "No se pudo extraer el audio del video"

const promptTemplate = `Eres un experto planificador de viajes. Un usuario ha compartido un video de viaje de %s y esta es la transcripción de su audio:

"""
%s
"""

Basándote ÚNICAMENTE en el contenido de la transcripción, identifica el destino del viaje y genera un itinerario realista y detallado.

Reglas importantes:
- El destino debe deducirse estrictamente de la transcripción, no lo inventes a partir de otra cosa.
- Cada día del itinerario es una fecha de calendario real, no una agrupación arbitraria: si se llega por la tarde, la cena de esa misma tarde pertenece al día 1.
- Asigna las horas siguiendo un ritmo diario realista: desayuno 08:00-10:00, mañana 09:00-13:00, comida 13:00-15:00, tarde 16:00-19:00, cena 20:00-22:00, noche 22:00-01:00. No repartas las actividades de forma uniforme.
- Incluye 4-5 días con 3-5 actividades por día, y lista 4-6 lugares destacados.

Genera un JSON con la siguiente estructura EXACTA (sin texto adicional, solo el JSON):

{
  "destination": "Nombre del destino",
  "city": "Ciudad principal",
  "country": "País",
  "airport_code": "Código IATA del aeropuerto más cercano",
  "city_code": "Código IATA de la ciudad",
  "description": "Breve descripción atractiva del destino (1-2 líneas)",
  "duration": "X días",
  "budget": "€X - €Y por persona",
  "best_time": "Mejor época para visitar",
  "days": [
    {
      "title": "Día 1: Título descriptivo",
      "activities": [
        {
          "time": "09:00",
          "activity": "Descripción de la actividad",
          "location": "Nombre del lugar"
        }
      ]
    }
  ],
  "places": [
    {
      "name": "Nombre del lugar",
      "description": "Descripción breve",
      "tip": "Consejo útil para visitar"
    }
  ],
  "note": "Nota breve para el viajero"
}

Haz que sea inspirador, práctico y realista.`

// BuildPrompt renders the generation prompt for a transcript and the
// platform the video came from.
func BuildPrompt(transcript string, ref videolink.Reference) string {
	if transcript == "" {
		transcript = PlaceholderTranscript
	}
	platform := string(ref.Platform)
	if platform == "" {
		platform = "redes sociales"
	}
	return fmt.Sprintf(promptTemplate, platform, transcript)
}
