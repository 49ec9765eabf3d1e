package catalog

import "nando-backend/internal/models"

// SiteContent is the bilingual UI string dictionary served to the frontend
// and reused for localized server-side messages.
type SiteContent struct {
	Nav          NavContent          `json:"nav"`
	Hero         HeroContent         `json:"hero"`
	About        AboutContent        `json:"about"`
	Reservations ReservationsContent `json:"reservations"`
	Menu         MenuContent         `json:"menu"`
	Contact      ContactContent      `json:"contact"`
	Chatbot      ChatbotContent      `json:"chatbot"`
}

type NavContent struct {
	Home         models.Text `json:"home"`
	Menu         models.Text `json:"menu"`
	Reservations models.Text `json:"reservations"`
	Contact      models.Text `json:"contact"`
}

type HeroContent struct {
	Headline    models.Text `json:"headline"`
	Subheadline models.Text `json:"subheadline"`
	CTAMenu     models.Text `json:"cta_menu"`
	CTAReserve  models.Text `json:"cta_reserve"`
}

type AboutContent struct {
	Title models.Text `json:"title"`
	Text  models.Text `json:"text"`
}

type ReservationsContent struct {
	Title              models.Text `json:"title"`
	Name               models.Text `json:"name"`
	Contact            models.Text `json:"contact"`
	PartySize          models.Text `json:"party_size"`
	Date               models.Text `json:"date"`
	Time               models.Text `json:"time"`
	ReservationType    models.Text `json:"reservation_type"`
	DineIn             models.Text `json:"dine_in"`
	Takeout            models.Text `json:"takeout"`
	Submit             models.Text `json:"submit"`
	Success            models.Text `json:"success"`
	SuccessTypeDineIn  models.Text `json:"success_type_dine_in"`
	SuccessTypeTakeout models.Text `json:"success_type_takeout"`
	SubmitFailed       models.Text `json:"submit_failed"`
}

type MenuContent struct {
	Title     models.Text `json:"title"`
	Subtitle  models.Text `json:"subtitle"`
	SidesNote models.Text `json:"sides_note"`
}

type ContactContent struct {
	Title    models.Text `json:"title"`
	Subtitle models.Text `json:"subtitle"`
}

type ChatbotContent struct {
	HeaderTitle      models.Text `json:"header_title"`
	Greeting         models.Text `json:"greeting"`
	InputPlaceholder models.Text `json:"input_placeholder"`
	SuggestionsMenu  models.Text `json:"suggestions_menu"`
	SuggestionsRes   models.Text `json:"suggestions_reservations"`
	SuggestionsInfo  models.Text `json:"suggestions_contact"`
	ErrorMessage     models.Text `json:"error_message"`
}

// Content is the site-wide dictionary. The site has exactly two languages and
// the strings ship with the binary.
var Content = SiteContent{
	Nav: NavContent{
		Home:         models.Text{ES: "Inicio", EN: "Home"},
		Menu:         models.Text{ES: "Menú", EN: "Menu"},
		Reservations: models.Text{ES: "Reservaciones", EN: "Reservations"},
		Contact:      models.Text{ES: "Contacto", EN: "Contact"},
	},
	Hero: HeroContent{
		Headline:    models.Text{ES: "Donde Nando Grill", EN: "Donde Nando Grill"},
		Subheadline: models.Text{ES: "El auténtico sabor de la parrilla nicaragüense. Carnes de primera, ambiente familiar y momentos inolvidables.", EN: "The authentic taste of Nicaraguan grill. Premium meats, family atmosphere, and unforgettable moments."},
		CTAMenu:     models.Text{ES: "Ver Menú", EN: "View Menu"},
		CTAReserve:  models.Text{ES: "Reservar Mesa", EN: "Book a Table"},
	},
	About: AboutContent{
		Title: models.Text{ES: "Nuestra Historia", EN: "Our Story"},
		Text:  models.Text{ES: "Desde 2005, Donde Nando Grill ha sido el rincón preferido para los amantes de la buena carne. Nuestra pasión es ofrecer cortes de la más alta calidad, preparados con el sazón tradicional que nos caracteriza.", EN: "Since 2005, Donde Nando Grill has been the favorite corner for lovers of good meat. Our passion is to offer the highest quality cuts, prepared with the traditional seasoning that characterizes us."},
	},
	Reservations: ReservationsContent{
		Title:              models.Text{ES: "Haz tu Reservación", EN: "Make a Reservation"},
		Name:               models.Text{ES: "Nombre Completo", EN: "Full Name"},
		Contact:            models.Text{ES: "Teléfono o Email", EN: "Phone or Email"},
		PartySize:          models.Text{ES: "Personas", EN: "Party Size"},
		Date:               models.Text{ES: "Fecha", EN: "Date"},
		Time:               models.Text{ES: "Hora", EN: "Time"},
		ReservationType:    models.Text{ES: "Tipo de Pedido", EN: "Order Type"},
		DineIn:             models.Text{ES: "Para Comer Aquí", EN: "Dine-In"},
		Takeout:            models.Text{ES: "Para Llevar", EN: "Takeout"},
		Submit:             models.Text{ES: "Confirmar Reservación", EN: "Confirm Reservation"},
		Success:            models.Text{ES: "¡Gracias! Hemos recibido tu solicitud para {{type}}. Te contactaremos pronto para confirmar.", EN: "Thank you! We have received your request for {{type}}. We will contact you soon to confirm."},
		SuccessTypeDineIn:  models.Text{ES: "una reservación", EN: "a reservation"},
		SuccessTypeTakeout: models.Text{ES: "un pedido para llevar", EN: "a takeout order"},
		SubmitFailed:       models.Text{ES: "No pudimos enviar tu solicitud. Por favor, intenta de nuevo.", EN: "We could not send your request. Please try again."},
	},
	Menu: MenuContent{
		Title:     models.Text{ES: "Nuestro Menú", EN: "Our Menu"},
		Subtitle:  models.Text{ES: "Calidad y sabor en cada corte.", EN: "Quality and flavor in every cut."},
		SidesNote: models.Text{ES: "Todos nuestros platos fuertes incluyen dos acompañamientos a su elección.", EN: "All our main courses include two side dishes of your choice."},
	},
	Contact: ContactContent{
		Title:    models.Text{ES: "Contáctanos", EN: "Contact Us"},
		Subtitle: models.Text{ES: "Estamos para servirte. ¡Visítanos o llámanos!", EN: "We are here to serve you. Visit or call us!"},
	},
	Chatbot: ChatbotContent{
		HeaderTitle:      models.Text{ES: "Asistente Nando", EN: "Nando's Assistant"},
		Greeting:         models.Text{ES: "¡Hola! Soy el asistente virtual de Donde Nando Grill. Puedo ayudarte con el menú, reservaciones o nuestra información de contacto.", EN: "Hi! I'm the virtual assistant for Donde Nando Grill. I can help with the menu, reservations, or our contact info."},
		InputPlaceholder: models.Text{ES: "Escribe tu pregunta...", EN: "Type your question..."},
		SuggestionsMenu:  models.Text{ES: "Ver Menú", EN: "View Menu"},
		SuggestionsRes:   models.Text{ES: "Hacer una Reservación", EN: "Make a Reservation"},
		SuggestionsInfo:  models.Text{ES: "Info de Contacto", EN: "Contact Info"},
		ErrorMessage:     models.Text{ES: "Lo siento, tengo problemas para conectarme en este momento. Por favor, intenta de nuevo más tarde.", EN: "Sorry, I'm having trouble connecting right now. Please try again later."},
	},
}
