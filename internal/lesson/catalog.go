package lesson

import "github.com/barbian-academy/backend/internal/domain"

// phases curriculum metadata, five stages of fourteen lessons each
var phases = []*domain.PhaseModel{
	{
		Number:      1,
		Title:       "Fundamentos de Barbería",
		Weeks:       "Semanas 1-2",
		Rank:        "El Novato",
		Description: "Aprende las bases esenciales: herramientas, técnicas básicas y primeros cortes. Construye una base sólida para tu carrera como barbero profesional.",
	},
	{
		Number:      2,
		Title:       "Técnicas Básicas",
		Weeks:       "Semanas 3-5",
		Rank:        "El Aprendiz",
		Description: "Domina cortes básicos, primeros fades y afeitado suave. Desarrolla la coordinación y precisión necesarias para trabajos más complejos.",
	},
	{
		Number:      3,
		Title:       "Dominio Técnico",
		Weeks:       "Semanas 6-8",
		Rank:        "Barbián",
		Description: "Perfecciona técnicas, aprende estilos avanzados y desarrolla habilidades de atención al cliente. Prepárate para trabajar con confianza en cualquier barbershop.",
	},
	{
		Number:      4,
		Title:       "Avanzado y Estilo",
		Weeks:       "Semanas 9-10",
		Rank:        "Experto",
		Description: "Domina estilos complejos, desarrolla tu creatividad y mejora tu velocidad. Conviértete en un artista de la barbería con técnicas de nivel profesional.",
	},
	{
		Number:      5,
		Title:       "Profesionalización Total",
		Weeks:       "Semanas 11-12",
		Rank:        "Maestro Barbero",
		Description: "Prepárate para trabajar, abrir tu negocio o conseguir empleo. Desarrolla tu marca personal, aprende marketing y obtén tu certificación oficial como Barbero Profesional.",
	},
}

// catalog the full course, authored content fixed at build time
var catalog = []*domain.LessonModel{
	// Fase 1
	{ID: 1, Phase: 1, Title: "Bienvenida: ¿Por qué la barbería?", Task: "Escribe tu meta como barbero", Duration: "15 min"},
	{ID: 2, Phase: 1, Title: "Herramientas del barbero: tijeras, máquinas, peines, navajas", Task: "Identifica cada herramienta en una imagen", Duration: "20 min"},
	{ID: 3, Phase: 1, Title: "Tipos de cabello y texturas", Task: "Clasifica muestras (graso, seco, rizado, liso)", Duration: "25 min"},
	{ID: 4, Phase: 1, Title: "Higiene y seguridad en el salón", Task: "Haz una lista de 5 normas de higiene", Duration: "18 min"},
	{ID: 5, Phase: 1, Title: "Postura del barbero y del cliente", Task: "Practica sentarte correctamente 10 min", Duration: "30 min"},
	{ID: 6, Phase: 1, Title: "Manejo de la tijera: agarre y movimientos básicos", Task: "Corta papel siguiendo líneas", Duration: "35 min"},
	{ID: 7, Phase: 1, Title: "Manejo de la máquina: tipos de cuchillas y ajustes", Task: "Ajusta una máquina en 3 longitudes distintas", Duration: "25 min"},
	{ID: 8, Phase: 1, Title: "Partes del cabello: coronilla, nuca, sienes", Task: "Dibuja un mapa del cabello masculino", Duration: "20 min"},
	{ID: 9, Phase: 1, Title: "Corte básico con tijera: línea recta", Task: "Corta una línea recta en peluca", Duration: "40 min"},
	{ID: 10, Phase: 1, Title: "Corte con máquina: desde arriba hacia abajo", Task: "Haz un corte uniforme en peluca", Duration: "35 min"},
	{ID: 11, Phase: 1, Title: "Peinado básico y secado con secador", Task: "Peina y seca una peluca con cepillo redondo", Duration: "30 min"},
	{ID: 12, Phase: 1, Title: "Introducción al fade: qué es y tipos (low, mid, high)", Task: "Mira 3 ejemplos y clasifícalos", Duration: "25 min"},
	{ID: 13, Phase: 1, Title: "Desafío Semanal: Arma tu kit de barbero", Task: "Sube foto de tus herramientas", Duration: "45 min"},
	{ID: 14, Phase: 1, Title: "Repaso y evaluación", Task: "Cuestionario de 10 preguntas", Duration: "30 min"},

	// Fase 2
	{ID: 15, Phase: 2, Title: "Fade bajo (low fade): paso a paso", Task: "Haz un low fade en peluca", Duration: "45 min"},
	{ID: 16, Phase: 2, Title: "Transición suave: cómo graduar", Task: "Usa 3 guardas diferentes en una línea", Duration: "40 min"},
	{ID: 17, Phase: 2, Title: "Corte con tijera en seco vs. mojado", Task: "Compara ambos métodos", Duration: "35 min"},
	{ID: 18, Phase: 2, Title: "Peinados clásicos: pompadour básico", Task: "Reproduce un pompadour en peluca", Duration: "50 min"},
	{ID: 19, Phase: 2, Title: "Afeitado con navaja: seguridad y ángulo", Task: "Practica movimientos en gel (sin piel)", Duration: "30 min"},
	{ID: 20, Phase: 2, Title: "Preparación para afeitar: vapor, toalla caliente", Task: "Simula el ritual de afeitado", Duration: "25 min"},
	{ID: 21, Phase: 2, Title: "Primer afeitado básico (mejillas)", Task: "Afeita zona segura en piel sintética", Duration: "40 min"},
	{ID: 22, Phase: 2, Title: "Diseño de barba: líneas limpias", Task: "Dibuja contornos con navaja en espuma", Duration: "35 min"},
	{ID: 23, Phase: 2, Title: "Uso de la cuchilla de precisión", Task: "Limpia líneas en cuello y sienes", Duration: "30 min"},
	{ID: 24, Phase: 2, Title: "Corte en capas con tijera", Task: "Haz capas ligeras en peluca", Duration: "45 min"},
	{ID: 25, Phase: 2, Title: "Fade medio (mid fade)", Task: "Completa un mid fade limpio", Duration: "50 min"},
	{ID: 26, Phase: 2, Title: "Estilo texturizado con tijera de desfilado", Task: "Texturiza la parte superior", Duration: "40 min"},
	{ID: 27, Phase: 2, Title: "Desafío: Haz un corte completo (cabello + barba)", Task: "Sube video o fotos del proceso", Duration: "60 min"},
	{ID: 28, Phase: 2, Title: "Repaso y retroalimentación", Task: "Recibe correcciones automáticas", Duration: "30 min"},

	// Fase 3
	{ID: 29, Phase: 3, Title: "High fade con línea nítida", Task: "Haz un high fade con línea marcada", Duration: "55 min"},
	{ID: 30, Phase: 3, Title: "Skin fade: transición a piel", Task: "Practica hasta llegar a 'skin' sin errores", Duration: "60 min"},
	{ID: 31, Phase: 3, Title: "Diseño artístico en barba (líneas geométricas)", Task: "Dibuja una cruz o línea diagonal", Duration: "45 min"},
	{ID: 32, Phase: 3, Title: "Corte bajo con textura superior", Task: "Combina máquina baja + tijera texturizada", Duration: "50 min"},
	{ID: 33, Phase: 3, Title: "Peinados modernos: quiff, undercut", Task: "Reproduce un undercut limpio", Duration: "45 min"},
	{ID: 34, Phase: 3, Title: "Afeitado completo con navaja (cuello, bigote)", Task: "Simula todo el proceso paso a paso", Duration: "50 min"},
	{ID: 35, Phase: 3, Title: "Uso de productos: pomadas, ceras, aceites", Task: "Aplica productos en peinado terminado", Duration: "30 min"},
	{ID: 36, Phase: 3, Title: "Atención al cliente: escuchar necesidades", Task: "Haz un role-play: '¿Qué estilo quieres?'", Duration: "25 min"},
	{ID: 37, Phase: 3, Title: "Manejo de reclamaciones: 'me cortaste mal'", Task: "Escribe tu respuesta profesional", Duration: "20 min"},
	{ID: 38, Phase: 3, Title: "Técnicas de vender servicios adicionales", Task: "Propón un afeitado + diseño de barba", Duration: "25 min"},
	{ID: 39, Phase: 3, Title: "Corte para diferentes formas de rostro", Task: "Ajusta estilo según forma de cara", Duration: "40 min"},
	{ID: 40, Phase: 3, Title: "Desafío: Corte + afeitado + diseño en 45 min", Task: "Cronometra tu práctica", Duration: "45 min"},
	{ID: 41, Phase: 3, Title: "Repaso de errores comunes", Task: "Identifica 3 errores en un video", Duration: "30 min"},
	{ID: 42, Phase: 3, Title: "Evaluación técnica", Task: "Cuestionario + envío de trabajo práctico", Duration: "40 min"},

	// Fase 4
	{ID: 43, Phase: 4, Title: "Fade con diseño (líneas, puntos, nombres)", Task: "Haz un diseño simple en el lateral", Duration: "60 min"},
	{ID: 44, Phase: 4, Title: "Twin fade (doble fade simétrico)", Task: "Logra simetría perfecta en ambos lados", Duration: "70 min"},
	{ID: 45, Phase: 4, Title: "Corte con agua (estilo japonés)", Task: "Practica control con agua y tijera", Duration: "50 min"},
	{ID: 46, Phase: 4, Title: "Peinados con tupé alto y volumen", Task: "Usa laca y secador para volumen", Duration: "45 min"},
	{ID: 47, Phase: 4, Title: "Afeitado con navaja en curvas (orejas, mentón)", Task: "Practica movimientos curvos", Duration: "55 min"},
	{ID: 48, Phase: 4, Title: "Diseño de barba estilo 'line up'", Task: "Define líneas nítidas en frente y cuello", Duration: "40 min"},
	{ID: 49, Phase: 4, Title: "Técnicas de texturizado con navaja", Task: "Haz degradado en barba con cuchilla", Duration: "45 min"},
	{ID: 50, Phase: 4, Title: "Corte para cabello rizado o Afro", Task: "Aprende técnicas sin frizz", Duration: "55 min"},
	{ID: 51, Phase: 4, Title: "Estilo libre: crea tu propio look", Task: "Diseña un corte original", Duration: "60 min"},
	{ID: 52, Phase: 4, Title: "Desafío: 3 cortes en 2 horas (ritmo de salón)", Task: "Cronometra cada uno", Duration: "120 min"},
	{ID: 53, Phase: 4, Title: "Video: 'Mi proceso de corte'", Task: "Graba tu rutina completa", Duration: "90 min"},
	{ID: 54, Phase: 4, Title: "Retroalimentación de la comunidad", Task: "Comparte y recibe comentarios", Duration: "30 min"},
	{ID: 55, Phase: 4, Title: "Repaso avanzado", Task: "Simulacro de examen práctico", Duration: "45 min"},
	{ID: 56, Phase: 4, Title: "Evaluación final – Parte 1", Task: "Teoría + identificación de errores", Duration: "50 min"},

	// Fase 5
	{ID: 57, Phase: 5, Title: "Cómo abrir tu barbería: pasos legales", Task: "Haz una lista de requisitos en tu país", Duration: "40 min"},
	{ID: 58, Phase: 5, Title: "Costos, precios y rentabilidad", Task: "Calcula precio de un corte con ganancia", Duration: "35 min"},
	{ID: 59, Phase: 5, Title: "Marketing: redes sociales para barberos", Task: "Crea un post para Instagram", Duration: "30 min"},
	{ID: 60, Phase: 5, Title: "Cómo tomar buenas fotos de tus trabajos", Task: "Edita una foto de corte con luz natural", Duration: "25 min"},
	{ID: 61, Phase: 5, Title: "Atención al cliente VIP", Task: "Simula servicio premium (café, revista)", Duration: "30 min"},
	{ID: 62, Phase: 5, Title: "Corte express (20 minutos)", Task: "Haz un corte rápido sin perder calidad", Duration: "20 min"},
	{ID: 63, Phase: 5, Title: "Mantenimiento de herramientas", Task: "Limpia y afila tijeras (simulado o real)", Duration: "25 min"},
	{ID: 64, Phase: 5, Title: "Certificación: envío del portafolio", Task: "Sube 5 trabajos terminados", Duration: "60 min"},
	{ID: 65, Phase: 5, Title: "Entrevista de trabajo: preguntas clave", Task: "Practica tu discurso: 'Soy barbero porque...'", Duration: "30 min"},
	{ID: 66, Phase: 5, Title: "Networking con otros barberos", Task: "Únete a un grupo o foro", Duration: "20 min"},
	{ID: 67, Phase: 5, Title: "Desafío final: corte + afeitado + diseño + foto", Task: "Entrega proyecto completo", Duration: "90 min"},
	{ID: 68, Phase: 5, Title: "Retroalimentación personalizada", Task: "Recibe evaluación de experto (real o simulada)", Duration: "45 min"},
	{ID: 69, Phase: 5, Title: "Tu marca personal: nombre, logo, estilo", Task: "Diseña tu nombre de barbero", Duration: "40 min"},
	{ID: 70, Phase: 5, Title: "Graduación: ¡Eres Barbián Profesional!", Task: "Recibe certificado digital", Duration: "30 min"},
}
