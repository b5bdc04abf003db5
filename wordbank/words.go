package wordbank

var words = map[string][]Entry{
	"animales": {
		{Word: "elefante", Taboo: []string{"trompa", "grande", "gris"}},
		{Word: "jirafa", Taboo: []string{"cuello", "alta", "manchas"}},
		{Word: "pingüino", Taboo: []string{"hielo", "frío", "blanco y negro"}},
		{Word: "tiburón", Taboo: []string{"mar", "dientes", "aleta"}},
		{Word: "águila", Taboo: []string{"volar", "ave", "garras"}},
		{Word: "serpiente", Taboo: []string{"veneno", "reptil", "larga"}},
		{Word: "delfín", Taboo: []string{"mar", "inteligente", "saltar"}},
		{Word: "canguro", Taboo: []string{"saltar", "Australia", "bolsa"}},
		{Word: "búho", Taboo: []string{"noche", "ojos", "sabio"}},
		{Word: "camello", Taboo: []string{"desierto", "joroba", "arena"}},
		{Word: "pulpo", Taboo: []string{"tentáculos", "ocho", "tinta"}},
		{Word: "murciélago", Taboo: []string{"noche", "volar", "cueva"}},
		{Word: "tortuga", Taboo: []string{"caparazón", "lenta", "vieja"}},
		{Word: "león", Taboo: []string{"rey", "melena", "selva"}},
		{Word: "abeja", Taboo: []string{"miel", "picar", "flor"}},
	},
	"comida": {
		{Word: "paella", Taboo: []string{"arroz", "Valencia", "marisco"}},
		{Word: "tortilla", Taboo: []string{"huevo", "patata", "española"}},
		{Word: "pizza", Taboo: []string{"Italia", "queso", "masa"}},
		{Word: "sushi", Taboo: []string{"Japón", "pescado", "arroz"}},
		{Word: "churros", Taboo: []string{"chocolate", "desayuno", "fritos"}},
		{Word: "gazpacho", Taboo: []string{"tomate", "frío", "sopa"}},
		{Word: "hamburguesa", Taboo: []string{"carne", "pan", "rápida"}},
		{Word: "croqueta", Taboo: []string{"jamón", "frita", "bechamel"}},
		{Word: "helado", Taboo: []string{"frío", "verano", "cucurucho"}},
		{Word: "empanada", Taboo: []string{"masa", "relleno", "horno"}},
		{Word: "tacos", Taboo: []string{"México", "tortilla", "picante"}},
		{Word: "lasaña", Taboo: []string{"pasta", "capas", "Italia"}},
	},
	"deportes": {
		{Word: "fútbol", Taboo: []string{"balón", "gol", "once"}},
		{Word: "baloncesto", Taboo: []string{"canasta", "altura", "botar"}},
		{Word: "tenis", Taboo: []string{"raqueta", "pelota", "red"}},
		{Word: "natación", Taboo: []string{"agua", "piscina", "nadar"}},
		{Word: "ciclismo", Taboo: []string{"bicicleta", "pedales", "casco"}},
		{Word: "ajedrez", Taboo: []string{"tablero", "rey", "jaque"}},
		{Word: "boxeo", Taboo: []string{"guantes", "ring", "golpe"}},
		{Word: "esquí", Taboo: []string{"nieve", "montaña", "tablas"}},
		{Word: "golf", Taboo: []string{"hoyo", "palo", "campo"}},
		{Word: "voleibol", Taboo: []string{"red", "playa", "manos"}},
		{Word: "atletismo", Taboo: []string{"correr", "pista", "medalla"}},
		{Word: "surf", Taboo: []string{"ola", "tabla", "mar"}},
	},
	"peliculas": {
		{Word: "Titanic", Taboo: []string{"barco", "iceberg", "hundir"}},
		{Word: "Matrix", Taboo: []string{"pastilla", "simulación", "Neo"}},
		{Word: "El Padrino", Taboo: []string{"mafia", "familia", "oferta"}},
		{Word: "Star Wars", Taboo: []string{"galaxia", "espada", "fuerza"}},
		{Word: "Jurassic Park", Taboo: []string{"dinosaurios", "parque", "isla"}},
		{Word: "El Rey León", Taboo: []string{"selva", "Simba", "Disney"}},
		{Word: "Toy Story", Taboo: []string{"juguetes", "vaquero", "infinito"}},
		{Word: "Tiburón", Taboo: []string{"playa", "miedo", "aleta"}},
		{Word: "Frozen", Taboo: []string{"hielo", "hermanas", "canción"}},
		{Word: "Gladiator", Taboo: []string{"Roma", "arena", "emperador"}},
		{Word: "Shrek", Taboo: []string{"ogro", "verde", "burro"}},
		{Word: "Avatar", Taboo: []string{"azul", "planeta", "Pandora"}},
	},
	"lugares": {
		{Word: "playa", Taboo: []string{"arena", "mar", "sombrilla"}},
		{Word: "biblioteca", Taboo: []string{"libros", "silencio", "estudiar"}},
		{Word: "aeropuerto", Taboo: []string{"avión", "maleta", "vuelo"}},
		{Word: "hospital", Taboo: []string{"médico", "enfermo", "urgencias"}},
		{Word: "circo", Taboo: []string{"payaso", "carpa", "función"}},
		{Word: "museo", Taboo: []string{"arte", "cuadros", "visita"}},
		{Word: "gimnasio", Taboo: []string{"pesas", "ejercicio", "músculos"}},
		{Word: "mercado", Taboo: []string{"comprar", "puestos", "fruta"}},
		{Word: "castillo", Taboo: []string{"rey", "torre", "medieval"}},
		{Word: "desierto", Taboo: []string{"arena", "calor", "camello"}},
		{Word: "estadio", Taboo: []string{"fútbol", "gradas", "público"}},
		{Word: "faro", Taboo: []string{"luz", "costa", "barcos"}},
	},
	"objetos": {
		{Word: "paraguas", Taboo: []string{"lluvia", "abrir", "mojarse"}},
		{Word: "espejo", Taboo: []string{"reflejo", "mirarse", "cristal"}},
		{Word: "tijeras", Taboo: []string{"cortar", "papel", "afiladas"}},
		{Word: "brújula", Taboo: []string{"norte", "orientarse", "aguja"}},
		{Word: "guitarra", Taboo: []string{"cuerdas", "música", "tocar"}},
		{Word: "almohada", Taboo: []string{"dormir", "cama", "blanda"}},
		{Word: "linterna", Taboo: []string{"luz", "oscuridad", "pilas"}},
		{Word: "reloj", Taboo: []string{"hora", "muñeca", "agujas"}},
		{Word: "escalera", Taboo: []string{"subir", "peldaños", "altura"}},
		{Word: "llave", Taboo: []string{"puerta", "cerradura", "abrir"}},
		{Word: "globo", Taboo: []string{"aire", "fiesta", "explotar"}},
		{Word: "cometa", Taboo: []string{"viento", "volar", "hilo"}},
	},
	"profesiones": {
		{Word: "bombero", Taboo: []string{"fuego", "manguera", "camión"}},
		{Word: "astronauta", Taboo: []string{"espacio", "cohete", "traje"}},
		{Word: "panadero", Taboo: []string{"pan", "horno", "harina"}},
		{Word: "dentista", Taboo: []string{"dientes", "muela", "consulta"}},
		{Word: "peluquero", Taboo: []string{"pelo", "tijeras", "cortar"}},
		{Word: "pintor", Taboo: []string{"cuadro", "pincel", "colores"}},
		{Word: "piloto", Taboo: []string{"avión", "volar", "cabina"}},
		{Word: "cocinero", Taboo: []string{"cocina", "platos", "chef"}},
		{Word: "jardinero", Taboo: []string{"plantas", "flores", "regar"}},
		{Word: "fotógrafo", Taboo: []string{"cámara", "foto", "retrato"}},
		{Word: "carpintero", Taboo: []string{"madera", "martillo", "muebles"}},
		{Word: "veterinario", Taboo: []string{"animales", "mascota", "curar"}},
	},
}
