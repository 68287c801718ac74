package catalog

import (
	"github.com/berkingurcan/siglife-api/internal/entities/game"
)

// allEvents is the compiled-in life-event table, partitioned by stage at
// catalog construction. Deltas are clamped on application, so values here
// may freely push a stat past its bounds.
var allEvents = []game.GameEvent{
	// Student events
	{
		ID:          "student_1",
		Stage:       game.StageStudent,
		Title:       "Study Session",
		Description: "Finals are coming up. How do you prepare?",
		Choices: []game.EventChoice{
			{
				ID:      "study_hard",
				Text:    "Pull an all-nighter studying",
				Effects: game.StatDeltas{Fitness: -3, Intelligence: 8, Discipline: 5},
				Outcome: "You aced the exam but feel exhausted.",
			},
			{
				ID:      "study_balanced",
				Text:    "Study in moderation, get good sleep",
				Effects: game.StatDeltas{Fitness: 2, Intelligence: 5, Discipline: 3},
				Outcome: "Balanced approach paid off.",
			},
			{
				ID:      "skip_study",
				Text:    "Wing it and go to a party instead",
				Effects: game.StatDeltas{Fitness: -2, Intelligence: -5, Charisma: 8},
				Outcome: "Made great connections but bombed the test.",
			},
		},
	},
	{
		ID:          "student_2",
		Stage:       game.StageStudent,
		Title:       "Part-Time Job",
		Description: "A local business is hiring. Do you apply?",
		Choices: []game.EventChoice{
			{
				ID:      "take_job",
				Text:    "Take the job for extra cash",
				Effects: game.StatDeltas{Money: 10, Intelligence: -2, Discipline: 5},
				Outcome: "Started earning money but studies suffered slightly.",
			},
			{
				ID:      "focus_studies",
				Text:    "Focus on studies instead",
				Effects: game.StatDeltas{Intelligence: 6, Discipline: 3},
				Outcome: "Maintained academic excellence.",
			},
		},
	},
	{
		ID:          "student_3",
		Stage:       game.StageStudent,
		Title:       "Gym Membership",
		Description: "Your university offers a free gym membership. You've never been athletic.",
		Choices: []game.EventChoice{
			{
				ID:      "start_gym",
				Text:    "Start hitting the gym regularly",
				Effects: game.StatDeltas{Fitness: 10, Charisma: 3, Discipline: 6},
				Outcome: "Physical gains and mental discipline improved.",
			},
			{
				ID:      "skip_gym",
				Text:    "Use that time for other things",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: -2},
				Outcome: "More time for studies, but missed out on health.",
			},
		},
	},
	{
		ID:          "student_4",
		Stage:       game.StageStudent,
		Title:       "Networking Event",
		Description: "There's a tech meetup happening downtown. Should you go?",
		Choices: []game.EventChoice{
			{
				ID:      "attend_event",
				Text:    "Attend and practice networking",
				Effects: game.StatDeltas{Money: -2, Intelligence: 3, Charisma: 8},
				Outcome: "Made valuable connections for the future.",
			},
			{
				ID:      "stay_home",
				Text:    "Stay home and work on a side project",
				Effects: game.StatDeltas{Intelligence: 6, Discipline: 4},
				Outcome: "Project skills improved significantly.",
			},
		},
	},
	{
		ID:          "student_5",
		Stage:       game.StageStudent,
		Title:       "Crypto Discovery",
		Description: "A friend tells you about cryptocurrency investing.",
		Choices: []game.EventChoice{
			{
				ID:      "invest_small",
				Text:    "Invest a small amount to learn",
				Effects: game.StatDeltas{Money: -5, Intelligence: 4, Investments: 5},
				Outcome: "Started learning about DeFi and blockchain.",
			},
			{
				ID:      "research_first",
				Text:    "Research extensively before investing",
				Effects: game.StatDeltas{Intelligence: 6, Investments: 3},
				Outcome: "Built a solid knowledge foundation.",
			},
			{
				ID:      "ignore_crypto",
				Text:    "Focus on traditional career path",
				Effects: game.StatDeltas{Intelligence: 2, Discipline: 4},
				Outcome: "Stayed focused on conventional success.",
			},
		},
	},
	{
		ID:          "student_6",
		Stage:       game.StageStudent,
		Title:       "Online Course",
		Description: "You found an online course that could boost your skills. It costs money and time.",
		Choices: []game.EventChoice{
			{
				ID:      "enroll_course",
				Text:    "Enroll and commit to finishing it",
				Effects: game.StatDeltas{Money: -3, Intelligence: 7, Discipline: 5},
				Outcome: "Gained valuable new skills.",
			},
			{
				ID:      "free_youtube",
				Text:    "Learn from free YouTube tutorials instead",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 2},
				Outcome: "Self-taught with mixed results.",
			},
		},
	},
	{
		ID:          "student_7",
		Stage:       game.StageStudent,
		Title:       "Study Group",
		Description: "Some classmates invite you to join their study group.",
		Choices: []game.EventChoice{
			{
				ID:      "join_group",
				Text:    "Join and contribute regularly",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: 6, Discipline: 3},
				Outcome: "Made friends and improved academically.",
			},
			{
				ID:      "solo_study",
				Text:    "Prefer to study alone",
				Effects: game.StatDeltas{Intelligence: 6, Charisma: -2, Discipline: 4},
				Outcome: "Focused study but missed social connections.",
			},
		},
	},
	{
		ID:          "student_8",
		Stage:       game.StageStudent,
		Title:       "Campus Club",
		Description: "A tech club on campus is recruiting new members.",
		Choices: []game.EventChoice{
			{
				ID:      "join_club",
				Text:    "Join and take on leadership role",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: 8, Discipline: 3},
				Outcome: "Developed leadership and networking skills.",
			},
			{
				ID:      "skip_club",
				Text:    "Too busy, maybe next semester",
				Effects: game.StatDeltas{Intelligence: 2, Discipline: 3},
				Outcome: "Stayed focused on academics.",
			},
		},
	},
	{
		ID:          "student_9",
		Stage:       game.StageStudent,
		Title:       "Morning Routine",
		Description: "Your sleep schedule is a mess. Time to make a change?",
		Choices: []game.EventChoice{
			{
				ID:      "wake_early",
				Text:    "Start waking up at 6 AM consistently",
				Effects: game.StatDeltas{Fitness: 5, Intelligence: 3, Discipline: 8},
				Outcome: "Became a morning person with more productive days.",
			},
			{
				ID:      "night_owl",
				Text:    "Embrace being a night owl",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: 2, Discipline: -2},
				Outcome: "Creative at night but irregular schedule.",
			},
		},
	},
	{
		ID:          "student_10",
		Stage:       game.StageStudent,
		Title:       "Internship Application",
		Description: "A great summer internship opportunity just opened up.",
		Choices: []game.EventChoice{
			{
				ID:      "apply_intern",
				Text:    "Apply and prepare intensively",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: 4, Discipline: 6},
				Outcome: "Got interview experience and learned valuable skills.",
			},
			{
				ID:      "summer_break",
				Text:    "Take the summer off to relax",
				Effects: game.StatDeltas{Fitness: 5, Charisma: 3, Discipline: -3},
				Outcome: "Recharged but missed an opportunity.",
			},
		},
	},
	{
		ID:          "student_11",
		Stage:       game.StageStudent,
		Title:       "Campus Drama",
		Description: "Your roommate starts dating your crush. How do you handle it?",
		Choices: []game.EventChoice{
			{
				ID:      "mature_response",
				Text:    "Accept it maturely and move on",
				Effects: game.StatDeltas{Fitness: -2, Charisma: 4, Discipline: 8},
				Outcome: "Showed emotional maturity. It still hurts though.",
			},
			{
				ID:      "confront_them",
				Text:    "Confront your roommate about it",
				Effects: game.StatDeltas{Fitness: 2, Charisma: -5, Discipline: -3},
				Outcome: "The confrontation was awkward. Lost a friend.",
			},
			{
				ID:      "channel_energy",
				Text:    "Channel frustration into self-improvement",
				Effects: game.StatDeltas{Fitness: 10, Intelligence: 5, Discipline: 6},
				Outcome: "Used the pain as fuel. You glow up hard.",
			},
		},
	},
	{
		ID:          "student_12",
		Stage:       game.StageStudent,
		Title:       "Cheating Opportunity",
		Description: "A classmate offers you stolen exam answers before the final.",
		Choices: []game.EventChoice{
			{
				ID:      "refuse_cheat",
				Text:    "Refuse and report to professor",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: -4, Discipline: 10},
				Outcome: "Did the right thing. Some classmates call you a snitch.",
			},
			{
				ID:      "take_answers",
				Text:    "Take the answers",
				Effects: game.StatDeltas{Money: 5, Intelligence: -5, Discipline: -8},
				Outcome: "Passed the exam but live with guilt.",
			},
			{
				ID:      "refuse_quietly",
				Text:    "Refuse but keep quiet about it",
				Effects: game.StatDeltas{Intelligence: 2, Discipline: 5},
				Outcome: "Stayed neutral. Some call it wisdom, some cowardice.",
			},
		},
	},
	{
		ID:          "student_13",
		Stage:       game.StageStudent,
		Title:       "Health Scare",
		Description: "You feel chest pain after an all-nighter fueled by energy drinks.",
		Choices: []game.EventChoice{
			{
				ID:      "see_doctor",
				Text:    "Go to the campus health center",
				Effects: game.StatDeltas{Money: -3, Fitness: 5, Discipline: 6},
				Outcome: "Doctor says you need to reduce caffeine. A wake-up call.",
			},
			{
				ID:      "ignore_it",
				Text:    "Push through, deadlines wait for no one",
				Effects: game.StatDeltas{Fitness: -8, Intelligence: 3, Discipline: -2},
				Outcome: "Finished your project but your body is screaming.",
			},
		},
	},
	{
		ID:          "student_14",
		Stage:       game.StageStudent,
		Title:       "Group Project Nightmare",
		Description: "Your group project partners are doing zero work. Deadline is tomorrow.",
		Choices: []game.EventChoice{
			{
				ID:      "do_everything",
				Text:    "Pull an all-nighter and do everything yourself",
				Effects: game.StatDeltas{Fitness: -5, Intelligence: 6, Charisma: -3, Discipline: 8},
				Outcome: "You carried the team. Resentment builds.",
			},
			{
				ID:      "confront_team",
				Text:    "Call an emergency meeting and confront them",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 5, Discipline: 4},
				Outcome: "The confrontation worked. Team stepped up.",
			},
			{
				ID:      "email_professor",
				Text:    "Email the professor about the situation",
				Effects: game.StatDeltas{Intelligence: 2, Charisma: -5, Discipline: 3},
				Outcome: "Professor intervenes. You get individual grades now.",
			},
		},
	},
	{
		ID:          "student_15",
		Stage:       game.StageStudent,
		Title:       "Startup Competition",
		Description: "There is a hackathon with a $5,000 prize. Entry requires skipping a class.",
		Choices: []game.EventChoice{
			{
				ID:      "join_hackathon",
				Text:    "Skip class and compete",
				Effects: game.StatDeltas{Intelligence: 8, Charisma: 6, Discipline: -2, Investments: 5},
				Outcome: "You didn't win but learned tons and made connections.",
			},
			{
				ID:      "skip_hackathon",
				Text:    "Attend class, GPA matters more",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 5},
				Outcome: "Safe choice. The class was boring anyway.",
			},
		},
	},
	{
		ID:          "student_16",
		Stage:       game.StageStudent,
		Title:       "Family Emergency",
		Description: "Your parent calls - they need help at home for a week. Midterms are next week.",
		Choices: []game.EventChoice{
			{
				ID:      "go_home",
				Text:    "Go home to help family",
				Effects: game.StatDeltas{Intelligence: -5, Charisma: 8, Discipline: -4},
				Outcome: "Family appreciates it. Grades took a hit.",
			},
			{
				ID:      "stay_study",
				Text:    "Stay and study, send money instead",
				Effects: game.StatDeltas{Money: -8, Intelligence: 5, Charisma: -3, Discipline: 4},
				Outcome: "Aced midterms but feel guilty.",
			},
		},
	},
	{
		ID:          "student_17",
		Stage:       game.StageStudent,
		Title:       "Social Media Fame",
		Description: "A meme you posted goes viral. People want to follow your content.",
		Choices: []game.EventChoice{
			{
				ID:      "become_influencer",
				Text:    "Start creating content seriously",
				Effects: game.StatDeltas{Money: 5, Intelligence: -2, Charisma: 10, Discipline: -4},
				Outcome: "Growing a following! Studies suffer though.",
			},
			{
				ID:      "ignore_fame",
				Text:    "Ignore it and focus on school",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 6},
				Outcome: "Fifteen minutes of fame passed. Back to the grind.",
			},
		},
	},
	{
		ID:          "student_18",
		Stage:       game.StageStudent,
		Title:       "Substance Temptation",
		Description: "Classmates offer you study drugs to help focus during finals week.",
		Choices: []game.EventChoice{
			{
				ID:      "take_drugs",
				Text:    "Try them just this once",
				Effects: game.StatDeltas{Fitness: -10, Intelligence: 8, Discipline: -5},
				Outcome: "Incredible focus but you feel terrible after.",
			},
			{
				ID:      "refuse_drugs",
				Text:    "Politely decline",
				Effects: game.StatDeltas{Fitness: 3, Charisma: 2, Discipline: 8},
				Outcome: "Kept your integrity. Natural focus improves.",
			},
		},
	},
	{
		ID:          "student_19",
		Stage:       game.StageStudent,
		Title:       "Coding Competition",
		Description: "A big tech company is hosting a coding challenge. Top performers get interviews.",
		Choices: []game.EventChoice{
			{
				ID:      "compete_hard",
				Text:    "Grind LeetCode for weeks to prepare",
				Effects: game.StatDeltas{Fitness: -4, Intelligence: 10, Charisma: -2, Discipline: 8},
				Outcome: "Made it to the final round. Companies are interested.",
			},
			{
				ID:      "casual_attempt",
				Text:    "Give it a casual try",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 2},
				Outcome: "Decent showing. Learned where your gaps are.",
			},
		},
	},
	{
		ID:          "student_20",
		Stage:       game.StageStudent,
		Title:       "Mentor Opportunity",
		Description: "A successful alumni offers to mentor you but expects serious commitment.",
		Choices: []game.EventChoice{
			{
				ID:      "accept_mentor",
				Text:    "Accept and commit fully",
				Effects: game.StatDeltas{Intelligence: 8, Charisma: 7, Discipline: 5, Investments: 3},
				Outcome: "The mentorship opens doors you never knew existed.",
			},
			{
				ID:      "too_busy",
				Text:    "Politely decline, you're too busy",
				Effects: game.StatDeltas{Intelligence: 1, Discipline: 2},
				Outcome: "Missed a big opportunity. Regret sets in.",
			},
		},
	},
	{
		ID:          "student_21",
		Stage:       game.StageStudent,
		Title:       "Dorm Theft",
		Description: "Your laptop gets stolen from your dorm. Insurance does not cover it.",
		Choices: []game.EventChoice{
			{
				ID:      "buy_new",
				Text:    "Buy a new one with savings",
				Effects: game.StatDeltas{Money: -15, Discipline: 3},
				Outcome: "Back to work but savings took a hit.",
			},
			{
				ID:      "use_library",
				Text:    "Use library computers until you save up",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: -2, Discipline: 8},
				Outcome: "Inconvenient but built character. Library becomes your home.",
			},
		},
	},
	{
		ID:          "student_22",
		Stage:       game.StageStudent,
		Title:       "Dating Distraction",
		Description: "You've been spending all your time with a new romantic interest.",
		Choices: []game.EventChoice{
			{
				ID:      "balance_dating",
				Text:    "Set boundaries for study time",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 4, Discipline: 6},
				Outcome: "Found a healthy balance. Relationship thrives.",
			},
			{
				ID:      "all_in_love",
				Text:    "Love conquers all, right?",
				Effects: game.StatDeltas{Intelligence: -6, Charisma: 10, Discipline: -5},
				Outcome: "Amazing memories but your grades crashed.",
			},
			{
				ID:      "breakup_focus",
				Text:    "End it to focus on yourself",
				Effects: game.StatDeltas{Fitness: -2, Intelligence: 5, Charisma: -4, Discipline: 8},
				Outcome: "Cold but effective. Back on the grind path.",
			},
		},
	},
	{
		ID:          "student_23",
		Stage:       game.StageStudent,
		Title:       "Professor Conflict",
		Description: "You got a grade you believe is unfair. The professor seems dismissive.",
		Choices: []game.EventChoice{
			{
				ID:      "fight_grade",
				Text:    "Formally appeal the grade",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: -3, Discipline: 5},
				Outcome: "Grade was adjusted. Professor now dislikes you.",
			},
			{
				ID:      "accept_grade",
				Text:    "Accept it and move on",
				Effects: game.StatDeltas{Charisma: 2, Discipline: 4},
				Outcome: "Let it go. Energy saved for future battles.",
			},
		},
	},
	{
		ID:          "student_24",
		Stage:       game.StageStudent,
		Title:       "Freelance Gig",
		Description: "Someone offers you $500 to build a website. Deadline conflicts with exams.",
		Choices: []game.EventChoice{
			{
				ID:      "take_gig",
				Text:    "Take the gig and figure it out",
				Effects: game.StatDeltas{Money: 12, Fitness: -3, Intelligence: 5, Discipline: -3},
				Outcome: "Delivered and got paid! Barely slept for two weeks.",
			},
			{
				ID:      "decline_gig",
				Text:    "Decline, academics come first",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 5},
				Outcome: "Smart choice. Exams went well.",
			},
		},
	},
	{
		ID:          "student_25",
		Stage:       game.StageStudent,
		Title:       "Imposter Syndrome",
		Description: "Everyone seems smarter than you. You're doubting if you belong here.",
		Choices: []game.EventChoice{
			{
				ID:      "seek_help",
				Text:    "Talk to a counselor about it",
				Effects: game.StatDeltas{Fitness: 2, Intelligence: 3, Charisma: 4, Discipline: 5},
				Outcome: "Therapy helped. You learn everyone feels this way.",
			},
			{
				ID:      "prove_wrong",
				Text:    "Use doubt as fuel to work harder",
				Effects: game.StatDeltas{Fitness: -3, Intelligence: 6, Discipline: 8},
				Outcome: "Channeled anxiety into productivity. Results speak.",
			},
			{
				ID:      "ignore_feelings",
				Text:    "Suppress feelings and push through",
				Effects: game.StatDeltas{Fitness: -4, Intelligence: 2, Charisma: -2, Discipline: 3},
				Outcome: "Not healthy but functional. For now.",
			},
		},
	},
	// Intern events
	{
		ID:          "intern_1",
		Stage:       game.StageIntern,
		Title:       "Extra Hours",
		Description: "Your manager asks if you can work late to finish a project. It's Friday.",
		Choices: []game.EventChoice{
			{
				ID:      "work_late",
				Text:    "Stay and impress them",
				Effects: game.StatDeltas{Money: 5, Fitness: -3, Charisma: 4, Discipline: 8},
				Outcome: "Manager noticed your dedication.",
			},
			{
				ID:      "set_boundary",
				Text:    "Politely decline, maintain work-life balance",
				Effects: game.StatDeltas{Fitness: 4, Charisma: -2, Discipline: 2},
				Outcome: "Maintained balance but missed visibility.",
			},
		},
	},
	{
		ID:          "intern_2",
		Stage:       game.StageIntern,
		Title:       "Learning Opportunity",
		Description: "There's an advanced certification course. Your company won't pay for it.",
		Choices: []game.EventChoice{
			{
				ID:      "pay_yourself",
				Text:    "Pay for it yourself",
				Effects: game.StatDeltas{Money: -8, Intelligence: 10, Discipline: 5},
				Outcome: "Investment in yourself pays off.",
			},
			{
				ID:      "free_resources",
				Text:    "Learn from free online resources",
				Effects: game.StatDeltas{Intelligence: 5, Discipline: 4},
				Outcome: "Self-taught but still progressed.",
			},
		},
	},
	{
		ID:          "intern_3",
		Stage:       game.StageIntern,
		Title:       "Office Politics",
		Description: "A colleague takes credit for your work in a meeting.",
		Choices: []game.EventChoice{
			{
				ID:      "speak_up",
				Text:    "Diplomatically correct the record",
				Effects: game.StatDeltas{Intelligence: 2, Charisma: 6, Discipline: 4},
				Outcome: "Stood your ground professionally.",
			},
			{
				ID:      "let_it_go",
				Text:    "Let it slide this time",
				Effects: game.StatDeltas{Charisma: -3, Discipline: 3},
				Outcome: "Avoided conflict but felt frustrated.",
			},
			{
				ID:      "document_everything",
				Text:    "Start documenting all your contributions",
				Effects: game.StatDeltas{Intelligence: 5, Discipline: 6},
				Outcome: "Built a paper trail for future reference.",
			},
		},
	},
	{
		ID:          "intern_4",
		Stage:       game.StageIntern,
		Title:       "Side Project",
		Description: "You have an idea for an app. When do you work on it?",
		Choices: []game.EventChoice{
			{
				ID:      "nights_weekends",
				Text:    "Grind nights and weekends",
				Effects: game.StatDeltas{Fitness: -4, Intelligence: 7, Discipline: 6, Investments: 5},
				Outcome: "Built something real while keeping your job.",
			},
			{
				ID:      "wait_for_later",
				Text:    "Focus on career first, ideas can wait",
				Effects: game.StatDeltas{Money: 4, Discipline: 3},
				Outcome: "Played it safe for now.",
			},
		},
	},
	{
		ID:          "intern_5",
		Stage:       game.StageIntern,
		Title:       "Toxic Coworker",
		Description: "A senior employee constantly belittles you in front of others.",
		Choices: []game.EventChoice{
			{
				ID:      "report_hr",
				Text:    "Report to HR",
				Effects: game.StatDeltas{Fitness: 3, Charisma: -4, Discipline: 5},
				Outcome: "HR investigates. Workplace gets awkward.",
			},
			{
				ID:      "confront_directly",
				Text:    "Confront them privately",
				Effects: game.StatDeltas{Fitness: 2, Charisma: 6, Discipline: 7},
				Outcome: "They backed down. Earned some respect.",
			},
			{
				ID:      "endure_silently",
				Text:    "Keep your head down and endure",
				Effects: game.StatDeltas{Fitness: -5, Charisma: -3, Discipline: 3},
				Outcome: "Soul-crushing but you kept the peace.",
			},
		},
	},
	{
		ID:          "intern_6",
		Stage:       game.StageIntern,
		Title:       "Competing Offer",
		Description: "Another company offers you a slightly better internship role.",
		Choices: []game.EventChoice{
			{
				ID:      "switch_jobs",
				Text:    "Take the new offer",
				Effects: game.StatDeltas{Money: 6, Intelligence: 4, Charisma: -3, Discipline: 2},
				Outcome: "Fresh start. Some bridges burned.",
			},
			{
				ID:      "stay_loyal",
				Text:    "Stay loyal to current company",
				Effects: game.StatDeltas{Charisma: 5, Discipline: 6},
				Outcome: "Loyalty noted. Trust builds.",
			},
			{
				ID:      "negotiate",
				Text:    "Use offer to negotiate better terms",
				Effects: game.StatDeltas{Money: 8, Charisma: 4, Discipline: 3},
				Outcome: "Bold move paid off. Got a raise.",
			},
		},
	},
	{
		ID:          "intern_7",
		Stage:       game.StageIntern,
		Title:       "Failed Deployment",
		Description: "Your code caused a production bug. Users are affected.",
		Choices: []game.EventChoice{
			{
				ID:      "own_mistake",
				Text:    "Immediately own up to it",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 8, Discipline: 6},
				Outcome: "Team appreciated your honesty. Fixed it together.",
			},
			{
				ID:      "blame_others",
				Text:    "Blame the code review process",
				Effects: game.StatDeltas{Intelligence: 2, Charisma: -8, Discipline: -4},
				Outcome: "No one bought it. Trust damaged.",
			},
			{
				ID:      "fix_silently",
				Text:    "Try to fix it before anyone notices",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: -2, Discipline: 4},
				Outcome: "Fixed it but your nervous sweat gave it away.",
			},
		},
	},
	{
		ID:          "intern_8",
		Stage:       game.StageIntern,
		Title:       "Mentor Conflict",
		Description: "Your mentor suggests a tech stack you think is outdated.",
		Choices: []game.EventChoice{
			{
				ID:      "follow_mentor",
				Text:    "Trust their experience",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 4, Discipline: 5},
				Outcome: "Learned there was wisdom in the old ways.",
			},
			{
				ID:      "push_new_tech",
				Text:    "Advocate strongly for modern approach",
				Effects: game.StatDeltas{Intelligence: 6, Charisma: -2, Discipline: 4},
				Outcome: "Proved your point but ruffled feathers.",
			},
		},
	},
	{
		ID:          "intern_9",
		Stage:       game.StageIntern,
		Title:       "Crypto Side Income",
		Description: "Your DeFi investments start generating passive income.",
		Choices: []game.EventChoice{
			{
				ID:      "reinvest_all",
				Text:    "Reinvest all profits",
				Effects: game.StatDeltas{Money: -3, Discipline: 5, Investments: 10},
				Outcome: "Compound growth activated.",
			},
			{
				ID:      "take_profits",
				Text:    "Take profits, enjoy life",
				Effects: game.StatDeltas{Money: 10, Fitness: 3, Investments: -2},
				Outcome: "Treated yourself. Balanced approach.",
			},
			{
				ID:      "diversify",
				Text:    "Diversify into different protocols",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 3, Investments: 8},
				Outcome: "Spread risk wisely. Learning fast.",
			},
		},
	},
	{
		ID:          "intern_10",
		Stage:       game.StageIntern,
		Title:       "Return Offer Pressure",
		Description: "Company hints at a return offer but wants you to commit early.",
		Choices: []game.EventChoice{
			{
				ID:      "commit_early",
				Text:    "Accept and lock it in",
				Effects: game.StatDeltas{Money: 8, Charisma: -2, Discipline: 5},
				Outcome: "Security gained but options limited.",
			},
			{
				ID:      "keep_options",
				Text:    "Ask for time to explore other offers",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 4, Discipline: 2},
				Outcome: "They respect your candor. Door stays open.",
			},
		},
	},
	{
		ID:          "intern_11",
		Stage:       game.StageIntern,
		Title:       "Imposter Syndrome Returns",
		Description: "Senior devs discuss concepts you don't understand. Panic sets in.",
		Choices: []game.EventChoice{
			{
				ID:      "ask_questions",
				Text:    "Ask questions and admit gaps",
				Effects: game.StatDeltas{Intelligence: 8, Charisma: 5, Discipline: 4},
				Outcome: "Everyone was happy to explain. You level up.",
			},
			{
				ID:      "pretend_understand",
				Text:    "Nod along and Google it later",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: -2, Discipline: 2},
				Outcome: "Figured it out eventually. Stressful though.",
			},
		},
	},
	{
		ID:          "intern_12",
		Stage:       game.StageIntern,
		Title:       "Networking Event",
		Description: "Your company is hosting a mixer. You're terrible at small talk.",
		Choices: []game.EventChoice{
			{
				ID:      "force_networking",
				Text:    "Push through discomfort and network",
				Effects: game.StatDeltas{Fitness: -2, Charisma: 8, Discipline: 5},
				Outcome: "Awkward at first but made great connections.",
			},
			{
				ID:      "skip_event",
				Text:    "Skip it and work on your project",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: -4, Discipline: 4},
				Outcome: "Missed opportunities but shipped features.",
			},
		},
	},
	{
		ID:          "intern_13",
		Stage:       game.StageIntern,
		Title:       "Health Insurance Decision",
		Description: "Your company offers different insurance plans. It is confusing.",
		Choices: []game.EventChoice{
			{
				ID:      "comprehensive",
				Text:    "Go with comprehensive coverage",
				Effects: game.StatDeltas{Money: -5, Fitness: 4, Discipline: 3},
				Outcome: "Peace of mind is worth it.",
			},
			{
				ID:      "minimal_coverage",
				Text:    "Choose minimal coverage, save money",
				Effects: game.StatDeltas{Money: 5, Fitness: -2},
				Outcome: "More cash now. Risky bet on your health.",
			},
		},
	},
	{
		ID:          "intern_14",
		Stage:       game.StageIntern,
		Title:       "Open Source Contribution",
		Description: "You find a bug in a popular library. Fixing it would take a weekend.",
		Choices: []game.EventChoice{
			{
				ID:      "contribute_fix",
				Text:    "Submit a fix and contribute",
				Effects: game.StatDeltas{Fitness: -3, Intelligence: 8, Charisma: 6},
				Outcome: "PR merged. Your name is in the commit history forever.",
			},
			{
				ID:      "just_report",
				Text:    "Just file an issue report",
				Effects: game.StatDeltas{Intelligence: 3, Discipline: 2},
				Outcome: "Helped out without the heavy lift.",
			},
		},
	},
	{
		ID:          "intern_15",
		Stage:       game.StageIntern,
		Title:       "Relocation Offer",
		Description: "Company offers permanent role but requires relocating to another city.",
		Choices: []game.EventChoice{
			{
				ID:      "relocate",
				Text:    "Take the leap and move",
				Effects: game.StatDeltas{Money: 8, Fitness: 2, Intelligence: 4, Charisma: -3},
				Outcome: "New city, new life. Adventure awaits.",
			},
			{
				ID:      "stay_local",
				Text:    "Decline and look for local opportunities",
				Effects: game.StatDeltas{Charisma: 5, Discipline: 3},
				Outcome: "Comfort zone preserved. Other doors will open.",
			},
		},
	},
	{
		ID:          "intern_16",
		Stage:       game.StageIntern,
		Title:       "Code Review Roast",
		Description: "A senior dev publicly tears apart your code in a review.",
		Choices: []game.EventChoice{
			{
				ID:      "take_feedback",
				Text:    "Thank them and improve",
				Effects: game.StatDeltas{Intelligence: 8, Charisma: 3, Discipline: 6},
				Outcome: "Turned harsh feedback into rapid growth.",
			},
			{
				ID:      "defend_code",
				Text:    "Defend your implementation choices",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: -4, Discipline: 2},
				Outcome: "Lost that battle but learned diplomacy.",
			},
		},
	},
	{
		ID:          "intern_17",
		Stage:       game.StageIntern,
		Title:       "Startup Recruiter",
		Description: "A fast-growing startup reaches out. High risk, high reward equity.",
		Choices: []game.EventChoice{
			{
				ID:      "join_startup",
				Text:    "Take the startup leap",
				Effects: game.StatDeltas{Money: -4, Intelligence: 6, Charisma: 4, Investments: 10},
				Outcome: "Joined the chaos. Either genius or disaster.",
			},
			{
				ID:      "stay_corporate",
				Text:    "Stick with stable corporate track",
				Effects: game.StatDeltas{Money: 5, Discipline: 4, Investments: 2},
				Outcome: "Safe path. Stability has its rewards.",
			},
		},
	},
	{
		ID:          "intern_18",
		Stage:       game.StageIntern,
		Title:       "Conference Speaking",
		Description: "You are invited to give a lightning talk at a local tech meetup.",
		Choices: []game.EventChoice{
			{
				ID:      "accept_talk",
				Text:    "Accept despite the terror",
				Effects: game.StatDeltas{Fitness: -2, Intelligence: 5, Charisma: 10},
				Outcome: "Nerves of steel. Great reception.",
			},
			{
				ID:      "decline_talk",
				Text:    "Too scary, decline politely",
				Effects: game.StatDeltas{Charisma: -3, Discipline: 2},
				Outcome: "Comfort zone intact. Growth opportunity missed.",
			},
		},
	},
	// Employee events
	{
		ID:          "employee_1",
		Stage:       game.StageEmployee,
		Title:       "Promotion Opportunity",
		Description: "A senior position opened up. You could apply or wait for more experience.",
		Choices: []game.EventChoice{
			{
				ID:      "apply_now",
				Text:    "Go for it aggressively",
				Effects: game.StatDeltas{Money: 8, Charisma: 7, Discipline: 5},
				Outcome: "Boldness paid off with a promotion.",
			},
			{
				ID:      "wait_prepare",
				Text:    "Wait and prepare for next time",
				Effects: game.StatDeltas{Intelligence: 5, Discipline: 4},
				Outcome: "Built more skills for a stronger future bid.",
			},
		},
	},
	{
		ID:          "employee_2",
		Stage:       game.StageEmployee,
		Title:       "Investment Decision",
		Description: "You've saved some money. What do you do with it?",
		Choices: []game.EventChoice{
			{
				ID:      "aggressive_invest",
				Text:    "Invest aggressively in crypto",
				Effects: game.StatDeltas{Money: -5, Intelligence: 3, Investments: 12},
				Outcome: "High risk, potential high reward.",
			},
			{
				ID:      "balanced_portfolio",
				Text:    "Build a balanced portfolio",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 3, Investments: 7},
				Outcome: "Steady growth with calculated risk.",
			},
			{
				ID:      "save_cash",
				Text:    "Keep it in savings for emergencies",
				Effects: game.StatDeltas{Money: 5, Discipline: 4},
				Outcome: "Conservative but secure.",
			},
		},
	},
	{
		ID:          "employee_3",
		Stage:       game.StageEmployee,
		Title:       "Health Wake-Up Call",
		Description: "Annual checkup shows you need to take better care of yourself.",
		Choices: []game.EventChoice{
			{
				ID:      "lifestyle_change",
				Text:    "Commit to a complete lifestyle overhaul",
				Effects: game.StatDeltas{Money: -4, Fitness: 12, Discipline: 8},
				Outcome: "Transformation begins.",
			},
			{
				ID:      "small_changes",
				Text:    "Make small, sustainable changes",
				Effects: game.StatDeltas{Fitness: 6, Discipline: 4},
				Outcome: "Gradual improvement is still improvement.",
			},
			{
				ID:      "ignore_it",
				Text:    "Too busy right now, deal with it later",
				Effects: game.StatDeltas{Money: 3, Fitness: -5},
				Outcome: "Prioritized work over health.",
			},
		},
	},
	{
		ID:          "employee_4",
		Stage:       game.StageEmployee,
		Title:       "Public Speaking",
		Description: "You're asked to present at a company all-hands meeting.",
		Choices: []game.EventChoice{
			{
				ID:      "embrace_challenge",
				Text:    "Prepare thoroughly and nail it",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: 10, Discipline: 5},
				Outcome: "Became known as a great communicator.",
			},
			{
				ID:      "avoid_spotlight",
				Text:    "Delegate to someone else",
				Effects: game.StatDeltas{Charisma: -4, Discipline: 2},
				Outcome: "Missed a growth opportunity.",
			},
		},
	},
	{
		ID:          "employee_5",
		Stage:       game.StageEmployee,
		Title:       "Team Lead Offer",
		Description: "You are offered a team lead role. More responsibility, same pay initially.",
		Choices: []game.EventChoice{
			{
				ID:      "accept_lead",
				Text:    "Accept the challenge",
				Effects: game.StatDeltas{Fitness: -3, Intelligence: 5, Charisma: 8, Discipline: 6},
				Outcome: "Leadership journey begins. Steep learning curve.",
			},
			{
				ID:      "decline_lead",
				Text:    "Stay as an individual contributor",
				Effects: game.StatDeltas{Fitness: 2, Intelligence: 4, Discipline: 3},
				Outcome: "Happy in your lane. Deep expertise builds.",
			},
		},
	},
	{
		ID:          "employee_6",
		Stage:       game.StageEmployee,
		Title:       "Layoff Survivor",
		Description: "Company did layoffs. You survived but friends didn't. Workload doubled.",
		Choices: []game.EventChoice{
			{
				ID:      "absorb_work",
				Text:    "Absorb the extra work, prove value",
				Effects: game.StatDeltas{Fitness: -6, Intelligence: 5, Charisma: 3, Discipline: 10},
				Outcome: "Survived and proved indispensable. Exhausted.",
			},
			{
				ID:      "push_back",
				Text:    "Push back on unrealistic expectations",
				Effects: game.StatDeltas{Fitness: 2, Charisma: 4, Discipline: 3},
				Outcome: "Maintained boundaries. Some tension with management.",
			},
			{
				ID:      "start_looking",
				Text:    "Quietly start job searching",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: 2, Discipline: 2},
				Outcome: "Options are always good. Never hurts to look.",
			},
		},
	},
	{
		ID:          "employee_7",
		Stage:       game.StageEmployee,
		Title:       "Remote Work Drama",
		Description: "Company mandates return to office. You love working from home.",
		Choices: []game.EventChoice{
			{
				ID:      "comply_return",
				Text:    "Comply and return to office",
				Effects: game.StatDeltas{Money: -3, Fitness: -4, Charisma: 4, Discipline: 5},
				Outcome: "Back to commuting. Adapting slowly.",
			},
			{
				ID:      "negotiate_hybrid",
				Text:    "Negotiate a hybrid arrangement",
				Effects: game.StatDeltas{Intelligence: 2, Charisma: 6, Discipline: 4},
				Outcome: "Compromised successfully. 3 days remote.",
			},
			{
				ID:      "job_search",
				Text:    "Find a fully remote job elsewhere",
				Effects: game.StatDeltas{Money: 5, Fitness: 4, Charisma: -3, Discipline: 3},
				Outcome: "Freedom regained at a new company.",
			},
		},
	},
	{
		ID:          "employee_8",
		Stage:       game.StageEmployee,
		Title:       "Equity vs Cash",
		Description: "Company offers new compensation: more equity but less cash.",
		Choices: []game.EventChoice{
			{
				ID:      "take_equity",
				Text:    "Bet on the company with equity",
				Effects: game.StatDeltas{Money: -5, Discipline: 4, Investments: 10},
				Outcome: "Long-term bet placed. Belief in the mission.",
			},
			{
				ID:      "keep_cash",
				Text:    "Prefer cash stability",
				Effects: game.StatDeltas{Money: 5, Discipline: 3},
				Outcome: "Cash in hand beats promises. Safe choice.",
			},
		},
	},
	{
		ID:          "employee_9",
		Stage:       game.StageEmployee,
		Title:       "Manager Conflict",
		Description: "Your new manager micromanages everything. It is driving you crazy.",
		Choices: []game.EventChoice{
			{
				ID:      "adapt_style",
				Text:    "Adapt to their management style",
				Effects: game.StatDeltas{Fitness: -3, Charisma: 3, Discipline: 6},
				Outcome: "Found ways to work within the system.",
			},
			{
				ID:      "honest_conversation",
				Text:    "Have an honest conversation",
				Effects: game.StatDeltas{Intelligence: 2, Charisma: 5, Discipline: 4},
				Outcome: "Cleared the air. Relationship improved.",
			},
			{
				ID:      "transfer_team",
				Text:    "Request a team transfer",
				Effects: game.StatDeltas{Fitness: 4, Charisma: -3, Discipline: 3},
				Outcome: "New team, fresh start. Some awkwardness remains.",
			},
		},
	},
	{
		ID:          "employee_10",
		Stage:       game.StageEmployee,
		Title:       "Burnout Warning",
		Description: "You haven't taken time off in months. Energy is depleting.",
		Choices: []game.EventChoice{
			{
				ID:      "take_vacation",
				Text:    "Take a proper two-week vacation",
				Effects: game.StatDeltas{Fitness: 10, Charisma: 4, Discipline: -2},
				Outcome: "Came back recharged. Should have done this sooner.",
			},
			{
				ID:      "staycation",
				Text:    "Take a few mental health days",
				Effects: game.StatDeltas{Fitness: 5, Charisma: 2, Discipline: 2},
				Outcome: "Quick recharge. Better than nothing.",
			},
			{
				ID:      "push_through",
				Text:    "Power through, vacation can wait",
				Effects: game.StatDeltas{Fitness: -8, Charisma: -3, Discipline: 4},
				Outcome: "Still standing but barely. Something has to give.",
			},
		},
	},
	{
		ID:          "employee_11",
		Stage:       game.StageEmployee,
		Title:       "Industry Conference",
		Description: "Big industry conference coming up. Company can sponsor attendance.",
		Choices: []game.EventChoice{
			{
				ID:      "attend_conf",
				Text:    "Go and network aggressively",
				Effects: game.StatDeltas{Money: -3, Intelligence: 6, Charisma: 10},
				Outcome: "Made industry connections. Ideas flowing.",
			},
			{
				ID:      "watch_online",
				Text:    "Watch the sessions online instead",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 2},
				Outcome: "Got the content, missed the hallway conversations.",
			},
		},
	},
	{
		ID:          "employee_12",
		Stage:       game.StageEmployee,
		Title:       "Side Hustle Discovery",
		Description: "Your employer found out about your weekend consulting gig.",
		Choices: []game.EventChoice{
			{
				ID:      "be_transparent",
				Text:    "Be fully transparent about it",
				Effects: game.StatDeltas{Money: 3, Charisma: 5, Discipline: 4},
				Outcome: "They are okay with it as long as it does not compete.",
			},
			{
				ID:      "shut_it_down",
				Text:    "End the side hustle immediately",
				Effects: game.StatDeltas{Discipline: 6, Investments: -3},
				Outcome: "Closed one door but kept the day job secure.",
			},
		},
	},
	{
		ID:          "employee_13",
		Stage:       game.StageEmployee,
		Title:       "Technical Debt Battle",
		Description: "Legacy code is slowing everything down. You propose a major refactor.",
		Choices: []game.EventChoice{
			{
				ID:      "fight_for_refactor",
				Text:    "Push hard for the refactor project",
				Effects: game.StatDeltas{Intelligence: 8, Charisma: -2, Discipline: 6},
				Outcome: "Won the battle. Months of cleanup ahead.",
			},
			{
				ID:      "incremental_fix",
				Text:    "Propose incremental improvements",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: 4, Discipline: 3},
				Outcome: "Slow and steady approach approved.",
			},
		},
	},
	{
		ID:          "employee_14",
		Stage:       game.StageEmployee,
		Title:       "Competitor Recruiter",
		Description: "A competitor offers 40% more salary. Your current company cannot match.",
		Choices: []game.EventChoice{
			{
				ID:      "take_offer",
				Text:    "Accept the competitor offer",
				Effects: game.StatDeltas{Money: 15, Intelligence: 3, Charisma: -4},
				Outcome: "Money talks. Bridges may burn.",
			},
			{
				ID:      "stay_loyal",
				Text:    "Stay for the team and culture",
				Effects: game.StatDeltas{Charisma: 8, Discipline: 5},
				Outcome: "Loyalty noted. Long-term relationships matter.",
			},
			{
				ID:      "negotiate_other_perks",
				Text:    "Negotiate for non-monetary perks",
				Effects: game.StatDeltas{Money: 3, Fitness: 3, Charisma: 5},
				Outcome: "Got more vacation and flexibility instead.",
			},
		},
	},
	{
		ID:          "employee_15",
		Stage:       game.StageEmployee,
		Title:       "Patent Opportunity",
		Description: "Your idea could be patented. Company would own it but you get recognition.",
		Choices: []game.EventChoice{
			{
				ID:      "submit_patent",
				Text:    "Submit the patent application",
				Effects: game.StatDeltas{Money: 5, Intelligence: 8, Charisma: 6},
				Outcome: "Patent filed. Your name is on it. Resume gold.",
			},
			{
				ID:      "keep_quiet",
				Text:    "Keep the idea to yourself for later",
				Effects: game.StatDeltas{Intelligence: 4, Investments: 3},
				Outcome: "Saved it for your own future ventures.",
			},
		},
	},
	{
		ID:          "employee_16",
		Stage:       game.StageEmployee,
		Title:       "Work BFF Leaves",
		Description: "Your closest work friend is leaving for another company.",
		Choices: []game.EventChoice{
			{
				ID:      "stay_focused",
				Text:    "Stay focused on your own path",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: -2, Discipline: 6},
				Outcome: "Sad to see them go but your path is clear.",
			},
			{
				ID:      "explore_together",
				Text:    "Ask if their new company is hiring",
				Effects: game.StatDeltas{Money: 4, Intelligence: 3, Charisma: 5},
				Outcome: "Got a referral. Options expanding.",
			},
		},
	},
	{
		ID:          "employee_17",
		Stage:       game.StageEmployee,
		Title:       "MBA Consideration",
		Description: "You are thinking about getting an MBA. Big investment of time and money.",
		Choices: []game.EventChoice{
			{
				ID:      "start_mba",
				Text:    "Enroll in a part-time MBA program",
				Effects: game.StatDeltas{Money: -12, Fitness: -4, Intelligence: 10, Discipline: 8},
				Outcome: "Academic grind begins again. Investment in future.",
			},
			{
				ID:      "skip_mba",
				Text:    "Learn through experience instead",
				Effects: game.StatDeltas{Money: 3, Intelligence: 3, Discipline: 4},
				Outcome: "Experience is a teacher too. Saved the tuition.",
			},
		},
	},
	{
		ID:          "employee_18",
		Stage:       game.StageEmployee,
		Title:       "Ethical Dilemma",
		Description: "You discover your company is doing something legally gray.",
		Choices: []game.EventChoice{
			{
				ID:      "whistleblow",
				Text:    "Report it to authorities",
				Effects: game.StatDeltas{Money: -5, Charisma: -8, Discipline: 10},
				Outcome: "Did the right thing. Career got complicated.",
			},
			{
				ID:      "raise_internally",
				Text:    "Raise concerns internally first",
				Effects: game.StatDeltas{Intelligence: 2, Charisma: 3, Discipline: 6},
				Outcome: "Started internal dialogue. Wait and see approach.",
			},
			{
				ID:      "look_away",
				Text:    "Not your problem, focus on your work",
				Effects: game.StatDeltas{Money: 3, Discipline: -5},
				Outcome: "Cognitive dissonance is uncomfortable.",
			},
		},
	},
	// Side hustler events
	{
		ID:          "side_hustler_1",
		Stage:       game.StageSideHustler,
		Title:       "First Customer",
		Description: "Someone wants to pay for your side project! But they want customizations.",
		Choices: []game.EventChoice{
			{
				ID:      "take_deal",
				Text:    "Take the deal and customize",
				Effects: game.StatDeltas{Money: 10, Fitness: -3, Charisma: 5, Discipline: 4},
				Outcome: "First paying customer! The grind is real.",
			},
			{
				ID:      "stick_to_vision",
				Text:    "Stick to your product vision, say no",
				Effects: game.StatDeltas{Intelligence: 3, Discipline: 6},
				Outcome: "Maintained product integrity.",
			},
		},
	},
	{
		ID:          "side_hustler_2",
		Stage:       game.StageSideHustler,
		Title:       "Time Crunch",
		Description: "Day job is demanding more. Side hustle is taking off. Something has to give.",
		Choices: []game.EventChoice{
			{
				ID:      "quit_job",
				Text:    "Take the leap, quit the day job",
				Effects: game.StatDeltas{Money: -10, Charisma: 5, Discipline: 10, Investments: 8},
				Outcome: "All in on the entrepreneurial path.",
			},
			{
				ID:      "hire_help",
				Text:    "Hire part-time help for side hustle",
				Effects: game.StatDeltas{Money: -5, Intelligence: 5, Discipline: 4},
				Outcome: "Learned to delegate and scale.",
			},
			{
				ID:      "scale_back",
				Text:    "Scale back side hustle temporarily",
				Effects: game.StatDeltas{Money: 5, Discipline: -3, Investments: -2},
				Outcome: "Played it safe but lost momentum.",
			},
		},
	},
	{
		ID:          "side_hustler_3",
		Stage:       game.StageSideHustler,
		Title:       "Crypto Opportunity",
		Description: "A DeFi protocol offers to integrate your product. High upside, high risk.",
		Choices: []game.EventChoice{
			{
				ID:      "go_crypto",
				Text:    "Embrace the crypto integration",
				Effects: game.StatDeltas{Money: 5, Intelligence: 6, Investments: 12},
				Outcome: "Entered the Web3 space.",
			},
			{
				ID:      "stay_traditional",
				Text:    "Stick with traditional business model",
				Effects: game.StatDeltas{Money: 6, Discipline: 4},
				Outcome: "Steady but potentially slower growth.",
			},
		},
	},
	{
		ID:          "side_hustler_4",
		Stage:       game.StageSideHustler,
		Title:       "Burnout Warning",
		Description: "You're exhausted. Haven't taken a day off in months.",
		Choices: []game.EventChoice{
			{
				ID:      "take_break",
				Text:    "Take a week off to recharge",
				Effects: game.StatDeltas{Fitness: 8, Charisma: 4, Discipline: -2},
				Outcome: "Came back refreshed and creative.",
			},
			{
				ID:      "push_through",
				Text:    "Push through, rest is for later",
				Effects: game.StatDeltas{Money: 5, Fitness: -8, Discipline: 6},
				Outcome: "Short-term gains, long-term risk.",
			},
		},
	},
	{
		ID:          "side_hustler_5",
		Stage:       game.StageSideHustler,
		Title:       "Viral Moment",
		Description: "Your product gets mentioned by a popular influencer. Traffic exploding.",
		Choices: []game.EventChoice{
			{
				ID:      "capitalize_fast",
				Text:    "Capitalize immediately, scale up",
				Effects: game.StatDeltas{Money: 15, Fitness: -6, Discipline: 5, Investments: 8},
				Outcome: "Rode the wave. Exhausting but lucrative.",
			},
			{
				ID:      "careful_growth",
				Text:    "Manage growth carefully, sustainable pace",
				Effects: game.StatDeltas{Money: 8, Intelligence: 4, Discipline: 6},
				Outcome: "Steady scaling. Some opportunity cost.",
			},
		},
	},
	{
		ID:          "side_hustler_6",
		Stage:       game.StageSideHustler,
		Title:       "Copycat Competition",
		Description: "Someone launched an exact clone of your product. They are aggressive.",
		Choices: []game.EventChoice{
			{
				ID:      "innovate_faster",
				Text:    "Innovate faster, stay ahead",
				Effects: game.StatDeltas{Fitness: -5, Intelligence: 10, Discipline: 8},
				Outcome: "Competition fueled innovation. You win on quality.",
			},
			{
				ID:      "legal_action",
				Text:    "Consider legal action",
				Effects: game.StatDeltas{Money: -8, Charisma: -3, Discipline: 4},
				Outcome: "Legal battle begins. Draining but necessary.",
			},
			{
				ID:      "differentiate",
				Text:    "Pivot to a different niche",
				Effects: game.StatDeltas{Intelligence: 7, Charisma: 4, Investments: 5},
				Outcome: "Found blue ocean. Competition becomes irrelevant.",
			},
		},
	},
	{
		ID:          "side_hustler_7",
		Stage:       game.StageSideHustler,
		Title:       "Partner Proposal",
		Description: "Someone wants to become your business partner. They bring capital.",
		Choices: []game.EventChoice{
			{
				ID:      "accept_partner",
				Text:    "Accept and split equity",
				Effects: game.StatDeltas{Money: 10, Charisma: 5, Discipline: -3, Investments: 8},
				Outcome: "Partnership formed. Now you answer to someone.",
			},
			{
				ID:      "decline_partner",
				Text:    "Decline, maintain full ownership",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 8},
				Outcome: "Solo path. All the risk, all the reward.",
			},
		},
	},
	{
		ID:          "side_hustler_8",
		Stage:       game.StageSideHustler,
		Title:       "Product Hunt Launch",
		Description: "Ready to launch on Product Hunt. Big opportunity but high stakes.",
		Choices: []game.EventChoice{
			{
				ID:      "launch_now",
				Text:    "Launch and go all out on promotion",
				Effects: game.StatDeltas{Fitness: -4, Charisma: 10, Investments: 8},
				Outcome: "Top 5 of the day! Massive exposure.",
			},
			{
				ID:      "delay_polish",
				Text:    "Delay to polish the product more",
				Effects: game.StatDeltas{Intelligence: 6, Discipline: 5},
				Outcome: "Better product, missed the momentum.",
			},
		},
	},
	{
		ID:          "side_hustler_9",
		Stage:       game.StageSideHustler,
		Title:       "Customer Complaint",
		Description: "An angry customer is threatening to destroy your reputation online.",
		Choices: []game.EventChoice{
			{
				ID:      "go_above_beyond",
				Text:    "Go above and beyond to fix it",
				Effects: game.StatDeltas{Money: -4, Charisma: 8, Discipline: 5},
				Outcome: "Turned hater into biggest fan. Crisis averted.",
			},
			{
				ID:      "stand_ground",
				Text:    "Stand your ground, they are being unreasonable",
				Effects: game.StatDeltas{Charisma: -6, Discipline: 4},
				Outcome: "Negative review posted. Thick skin required.",
			},
		},
	},
	{
		ID:          "side_hustler_10",
		Stage:       game.StageSideHustler,
		Title:       "Pricing Dilemma",
		Description: "Users love your product but complain about pricing.",
		Choices: []game.EventChoice{
			{
				ID:      "lower_price",
				Text:    "Lower prices to grow faster",
				Effects: game.StatDeltas{Money: -3, Charisma: 6, Investments: 5},
				Outcome: "More users, less margin. Volume play.",
			},
			{
				ID:      "raise_price",
				Text:    "Actually, raise prices for premium positioning",
				Effects: game.StatDeltas{Money: 8, Charisma: -2, Discipline: 5},
				Outcome: "Lost some users, kept the serious ones.",
			},
			{
				ID:      "freemium_model",
				Text:    "Introduce a freemium tier",
				Effects: game.StatDeltas{Intelligence: 6, Charisma: 4, Investments: 4},
				Outcome: "Balancing act begins. Learning funnel economics.",
			},
		},
	},
	{
		ID:          "side_hustler_11",
		Stage:       game.StageSideHustler,
		Title:       "Tech Stack Crisis",
		Description: "Your MVP tech stack is not scaling. Need to rewrite or patch.",
		Choices: []game.EventChoice{
			{
				ID:      "full_rewrite",
				Text:    "Commit to a full rewrite",
				Effects: game.StatDeltas{Money: -5, Fitness: -4, Intelligence: 10, Discipline: 8},
				Outcome: "Months of work but solid foundation now.",
			},
			{
				ID:      "patch_forward",
				Text:    "Patch it and keep moving",
				Effects: game.StatDeltas{Money: 3, Intelligence: 4, Discipline: -2},
				Outcome: "Tech debt accumulating. Faster for now.",
			},
		},
	},
	{
		ID:          "side_hustler_12",
		Stage:       game.StageSideHustler,
		Title:       "Investor Interest",
		Description: "An angel investor reaches out. Interested in early stage.",
		Choices: []game.EventChoice{
			{
				ID:      "take_meeting",
				Text:    "Take the meeting and pitch",
				Effects: game.StatDeltas{Money: 5, Charisma: 8, Investments: 10},
				Outcome: "Promising conversation. Due diligence begins.",
			},
			{
				ID:      "bootstrap_more",
				Text:    "Not ready, continue bootstrapping",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 6},
				Outcome: "Maintained independence. Growing organically.",
			},
		},
	},
	{
		ID:          "side_hustler_13",
		Stage:       game.StageSideHustler,
		Title:       "Feature Creep",
		Description: "Users keep requesting features. Product is becoming bloated.",
		Choices: []game.EventChoice{
			{
				ID:      "say_no",
				Text:    "Learn to say no, stay focused",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: -2, Discipline: 8},
				Outcome: "Maintained product focus. Some users unhappy.",
			},
			{
				ID:      "build_everything",
				Text:    "Build what users want",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 6, Discipline: -4},
				Outcome: "Feature-rich but complex. Identity blurring.",
			},
		},
	},
	{
		ID:          "side_hustler_14",
		Stage:       game.StageSideHustler,
		Title:       "Imposter Syndrome Peak",
		Description: "Successful founders make it look easy. You feel like a fraud.",
		Choices: []game.EventChoice{
			{
				ID:      "join_community",
				Text:    "Join a founder community for support",
				Effects: game.StatDeltas{Fitness: 3, Charisma: 8, Discipline: 5},
				Outcome: "Realized everyone feels this way. Community helps.",
			},
			{
				ID:      "double_down",
				Text:    "Prove yourself wrong with results",
				Effects: game.StatDeltas{Fitness: -4, Intelligence: 6, Discipline: 10},
				Outcome: "Channeled doubt into productivity. Numbers speak.",
			},
		},
	},
	{
		ID:          "side_hustler_15",
		Stage:       game.StageSideHustler,
		Title:       "Trademark Issue",
		Description: "A big company claims your product name infringes their trademark.",
		Choices: []game.EventChoice{
			{
				ID:      "fight_trademark",
				Text:    "Fight it, you were here first",
				Effects: game.StatDeltas{Money: -10, Charisma: -3, Discipline: 6},
				Outcome: "Legal fees mounting. Stressful battle.",
			},
			{
				ID:      "rebrand",
				Text:    "Rebrand and move on",
				Effects: game.StatDeltas{Money: -3, Intelligence: 5, Charisma: 4},
				Outcome: "New name, fresh start. Sometimes retreat is smart.",
			},
		},
	},
	{
		ID:          "side_hustler_16",
		Stage:       game.StageSideHustler,
		Title:       "Acquisition Interest",
		Description: "A bigger company wants to acquire your side project.",
		Choices: []game.EventChoice{
			{
				ID:      "sell_early",
				Text:    "Take the offer and cash out",
				Effects: game.StatDeltas{Money: 20, Discipline: -5, Investments: 5},
				Outcome: "Life-changing check. What now?",
			},
			{
				ID:      "keep_building",
				Text:    "Decline and keep building",
				Effects: game.StatDeltas{Intelligence: 6, Charisma: 5, Discipline: 10},
				Outcome: "Bet on yourself. Bigger things ahead.",
			},
		},
	},
	{
		ID:          "side_hustler_17",
		Stage:       game.StageSideHustler,
		Title:       "Remote Team Building",
		Description: "You can afford to hire your first contractor.",
		Choices: []game.EventChoice{
			{
				ID:      "hire_dev",
				Text:    "Hire a developer",
				Effects: game.StatDeltas{Money: -6, Intelligence: 8, Investments: 5},
				Outcome: "Building capacity. Learning to manage.",
			},
			{
				ID:      "hire_marketing",
				Text:    "Hire for marketing/sales",
				Effects: game.StatDeltas{Money: -6, Charisma: 8, Investments: 5},
				Outcome: "Growth focus. Learning distribution.",
			},
			{
				ID:      "stay_solo",
				Text:    "Stay solo for now",
				Effects: game.StatDeltas{Money: 3, Discipline: 5},
				Outcome: "Lean and mean. All profit yours.",
			},
		},
	},
	{
		ID:          "side_hustler_18",
		Stage:       game.StageSideHustler,
		Title:       "Work-Life Explosion",
		Description: "Your partner gives an ultimatum: them or the side hustle.",
		Choices: []game.EventChoice{
			{
				ID:      "prioritize_relationship",
				Text:    "Scale back hustle, prioritize relationship",
				Effects: game.StatDeltas{Fitness: 5, Charisma: 8, Discipline: -3, Investments: -5},
				Outcome: "Relationship saved. Hustle slowed.",
			},
			{
				ID:      "choose_hustle",
				Text:    "The hustle is the priority right now",
				Effects: game.StatDeltas{Charisma: -8, Discipline: 8, Investments: 6},
				Outcome: "Relationship ended. Focus intensifies.",
			},
			{
				ID:      "find_balance",
				Text:    "Commit to finding a better balance",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 4, Discipline: 5},
				Outcome: "Trying to have it all. Exhausting but possible.",
			},
		},
	},
	// Entrepreneur events
	{
		ID:          "entrepreneur_1",
		Stage:       game.StageEntrepreneur,
		Title:       "Funding Round",
		Description: "VCs are interested. Do you take their money?",
		Choices: []game.EventChoice{
			{
				ID:      "take_vc",
				Text:    "Take VC funding, grow fast",
				Effects: game.StatDeltas{Money: 15, Charisma: 5, Discipline: -3, Investments: 10},
				Outcome: "Rocket fuel acquired. Pressure increased.",
			},
			{
				ID:      "bootstrap",
				Text:    "Bootstrap and maintain control",
				Effects: game.StatDeltas{Money: 3, Intelligence: 5, Discipline: 10},
				Outcome: "Slower growth but full ownership.",
			},
		},
	},
	{
		ID:          "entrepreneur_2",
		Stage:       game.StageEntrepreneur,
		Title:       "Hiring Decision",
		Description: "Need to hire your first employee. Budget is tight.",
		Choices: []game.EventChoice{
			{
				ID:      "hire_senior",
				Text:    "Hire expensive senior talent",
				Effects: game.StatDeltas{Money: -8, Intelligence: 8, Investments: 5},
				Outcome: "Quality team member accelerates growth.",
			},
			{
				ID:      "hire_junior",
				Text:    "Hire eager junior and train them",
				Effects: game.StatDeltas{Money: -3, Charisma: 4, Discipline: 6},
				Outcome: "Built loyalty and developed talent.",
			},
		},
	},
	{
		ID:          "entrepreneur_3",
		Stage:       game.StageEntrepreneur,
		Title:       "Competition",
		Description: "A well-funded competitor enters your market.",
		Choices: []game.EventChoice{
			{
				ID:      "differentiate",
				Text:    "Double down on differentiation",
				Effects: game.StatDeltas{Intelligence: 8, Charisma: 4, Discipline: 6},
				Outcome: "Found your unique position.",
			},
			{
				ID:      "compete_price",
				Text:    "Compete on price aggressively",
				Effects: game.StatDeltas{Money: -5, Discipline: 5, Investments: -3},
				Outcome: "Race to bottom but survived.",
			},
			{
				ID:      "pivot",
				Text:    "Pivot to an adjacent market",
				Effects: game.StatDeltas{Intelligence: 10, Charisma: 3, Investments: 5},
				Outcome: "Found blue ocean opportunity.",
			},
		},
	},
	{
		ID:          "entrepreneur_4",
		Stage:       game.StageEntrepreneur,
		Title:       "Media Attention",
		Description: "A major publication wants to feature your story.",
		Choices: []game.EventChoice{
			{
				ID:      "embrace_media",
				Text:    "Become the face of your brand",
				Effects: game.StatDeltas{Charisma: 12, Discipline: 3, Investments: 5},
				Outcome: "Personal brand amplified business.",
			},
			{
				ID:      "stay_humble",
				Text:    "Keep low profile, let product speak",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 6},
				Outcome: "Stayed focused on execution.",
			},
		},
	},
	{
		ID:          "entrepreneur_5",
		Stage:       game.StageEntrepreneur,
		Title:       "Co-founder Conflict",
		Description: "You and your co-founder disagree on the company's direction.",
		Choices: []game.EventChoice{
			{
				ID:      "compromise",
				Text:    "Find a compromise",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 6, Discipline: 4},
				Outcome: "Middle ground found. Partnership preserved.",
			},
			{
				ID:      "stand_firm",
				Text:    "Stand firm on your vision",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: -5, Discipline: 8},
				Outcome: "Your way or highway. Co-founder tensions rise.",
			},
			{
				ID:      "buyout",
				Text:    "Propose a buyout",
				Effects: game.StatDeltas{Money: -10, Discipline: 6, Investments: 5},
				Outcome: "Expensive but now you have full control.",
			},
		},
	},
	{
		ID:          "entrepreneur_6",
		Stage:       game.StageEntrepreneur,
		Title:       "Product Launch Disaster",
		Description: "Your big launch had major bugs. Users are furious.",
		Choices: []game.EventChoice{
			{
				ID:      "war_room",
				Text:    "All-hands war room until fixed",
				Effects: game.StatDeltas{Fitness: -8, Intelligence: 8, Discipline: 10},
				Outcome: "Fixed in 48 hours. Team bonded through crisis.",
			},
			{
				ID:      "transparent_comms",
				Text:    "Transparent communication with users",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: 8, Discipline: 5},
				Outcome: "Honesty appreciated. Trust maintained.",
			},
		},
	},
	{
		ID:          "entrepreneur_7",
		Stage:       game.StageEntrepreneur,
		Title:       "Key Employee Leaving",
		Description: "Your best engineer got an offer from a big tech company.",
		Choices: []game.EventChoice{
			{
				ID:      "counter_offer",
				Text:    "Make a strong counter-offer",
				Effects: game.StatDeltas{Money: -8, Charisma: 4, Investments: 5},
				Outcome: "They stayed. Expensive but worth it.",
			},
			{
				ID:      "let_go",
				Text:    "Wish them well and let them go",
				Effects: game.StatDeltas{Intelligence: -3, Charisma: 6, Discipline: 3},
				Outcome: "Graceful exit. Need to find replacement fast.",
			},
		},
	},
	{
		ID:          "entrepreneur_8",
		Stage:       game.StageEntrepreneur,
		Title:       "Partnership Opportunity",
		Description: "A larger company wants a strategic partnership.",
		Choices: []game.EventChoice{
			{
				ID:      "accept_partnership",
				Text:    "Accept and integrate",
				Effects: game.StatDeltas{Money: 8, Charisma: 6, Investments: 10},
				Outcome: "Access to their customers. Growth accelerates.",
			},
			{
				ID:      "negotiate_terms",
				Text:    "Negotiate better terms first",
				Effects: game.StatDeltas{Intelligence: 6, Charisma: 3, Discipline: 5},
				Outcome: "Better deal secured. Patience paid off.",
			},
			{
				ID:      "decline_partnership",
				Text:    "Decline to maintain independence",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 7},
				Outcome: "Independence preserved. Slower path.",
			},
		},
	},
	{
		ID:          "entrepreneur_9",
		Stage:       game.StageEntrepreneur,
		Title:       "Runway Pressure",
		Description: "Burn rate is high. Six months of runway left.",
		Choices: []game.EventChoice{
			{
				ID:      "cut_costs",
				Text:    "Aggressive cost cutting",
				Effects: game.StatDeltas{Money: 10, Charisma: -5, Discipline: 6},
				Outcome: "Runway extended. Team morale took a hit.",
			},
			{
				ID:      "raise_emergency",
				Text:    "Emergency fundraise",
				Effects: game.StatDeltas{Money: 5, Charisma: 4, Investments: 8},
				Outcome: "Bridge round secured. Dilution hurts.",
			},
			{
				ID:      "revenue_push",
				Text:    "All-out push on revenue",
				Effects: game.StatDeltas{Money: 8, Fitness: -5, Discipline: 10},
				Outcome: "Sales focus pays off. Breathing room gained.",
			},
		},
	},
	{
		ID:          "entrepreneur_10",
		Stage:       game.StageEntrepreneur,
		Title:       "International Expansion",
		Description: "Opportunity to expand to European market.",
		Choices: []game.EventChoice{
			{
				ID:      "expand_europe",
				Text:    "Go for European expansion",
				Effects: game.StatDeltas{Money: -8, Intelligence: 6, Investments: 10},
				Outcome: "New market entered. Compliance headaches abound.",
			},
			{
				ID:      "focus_domestic",
				Text:    "Focus on domestic market first",
				Effects: game.StatDeltas{Money: 5, Discipline: 6},
				Outcome: "Strengthened home base. Europe can wait.",
			},
		},
	},
	{
		ID:          "entrepreneur_11",
		Stage:       game.StageEntrepreneur,
		Title:       "PR Crisis",
		Description: "Negative press about your company going viral.",
		Choices: []game.EventChoice{
			{
				ID:      "pr_blitz",
				Text:    "Launch aggressive PR counter-campaign",
				Effects: game.StatDeltas{Money: -6, Charisma: 5, Discipline: 4},
				Outcome: "Narrative somewhat controlled. Expensive lesson.",
			},
			{
				ID:      "stay_quiet",
				Text:    "Stay quiet and let it blow over",
				Effects: game.StatDeltas{Charisma: -4, Discipline: 5},
				Outcome: "It eventually passed. Some reputation damage.",
			},
			{
				ID:      "address_directly",
				Text:    "Address concerns directly and honestly",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 8, Discipline: 6},
				Outcome: "Transparency won people over. Crisis turned opportunity.",
			},
		},
	},
	{
		ID:          "entrepreneur_12",
		Stage:       game.StageEntrepreneur,
		Title:       "Board Disagreement",
		Description: "Your board wants you to fire a popular executive.",
		Choices: []game.EventChoice{
			{
				ID:      "follow_board",
				Text:    "Follow board recommendation",
				Effects: game.StatDeltas{Money: 5, Charisma: -6, Discipline: 4},
				Outcome: "Difficult decision made. Team trust shaken.",
			},
			{
				ID:      "defend_executive",
				Text:    "Defend the executive",
				Effects: game.StatDeltas{Charisma: 6, Discipline: 5, Investments: -3},
				Outcome: "Won this battle. Board relationship strained.",
			},
		},
	},
	{
		ID:          "entrepreneur_13",
		Stage:       game.StageEntrepreneur,
		Title:       "Technical Debt Reckoning",
		Description: "Years of quick fixes are haunting you. System is fragile.",
		Choices: []game.EventChoice{
			{
				ID:      "major_refactor",
				Text:    "Major refactor, pause features",
				Effects: game.StatDeltas{Money: -5, Intelligence: 10, Discipline: 8},
				Outcome: "Solid foundation rebuilt. Painful pause.",
			},
			{
				ID:      "hire_experts",
				Text:    "Hire consulting experts to help",
				Effects: game.StatDeltas{Money: -10, Intelligence: 6, Discipline: 4},
				Outcome: "Expert help accelerated the fix. Expensive.",
			},
		},
	},
	{
		ID:          "entrepreneur_14",
		Stage:       game.StageEntrepreneur,
		Title:       "Talent War",
		Description: "Competing for talent against companies with deeper pockets.",
		Choices: []game.EventChoice{
			{
				ID:      "equity_heavy",
				Text:    "Offer equity-heavy compensation",
				Effects: game.StatDeltas{Money: 3, Charisma: 6, Investments: 8},
				Outcome: "Attracted believers. Dilution continues.",
			},
			{
				ID:      "culture_sell",
				Text:    "Sell the mission and culture",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 10, Discipline: 5},
				Outcome: "Right people joined for right reasons.",
			},
		},
	},
	{
		ID:          "entrepreneur_15",
		Stage:       game.StageEntrepreneur,
		Title:       "Customer Concentration",
		Description: "One customer is 40% of revenue. They want better terms.",
		Choices: []game.EventChoice{
			{
				ID:      "give_in",
				Text:    "Give them what they want",
				Effects: game.StatDeltas{Money: -3, Charisma: 4, Discipline: -2},
				Outcome: "Kept the customer. Margin pressure.",
			},
			{
				ID:      "diversify_push",
				Text:    "Refuse and push to diversify",
				Effects: game.StatDeltas{Money: -5, Intelligence: 6, Discipline: 8},
				Outcome: "Risky but necessary. Finding new customers.",
			},
		},
	},
	{
		ID:          "entrepreneur_16",
		Stage:       game.StageEntrepreneur,
		Title:       "Imposter Syndrome at Scale",
		Description: "Company is growing but you feel unqualified to lead it.",
		Choices: []game.EventChoice{
			{
				ID:      "executive_coach",
				Text:    "Hire an executive coach",
				Effects: game.StatDeltas{Money: -4, Intelligence: 8, Charisma: 6, Discipline: 5},
				Outcome: "Coach helped you level up. Growth mindset.",
			},
			{
				ID:      "hire_coo",
				Text:    "Hire experienced COO to complement you",
				Effects: game.StatDeltas{Money: -8, Intelligence: 5, Investments: 6},
				Outcome: "Complementary skills. Delegation improves.",
			},
		},
	},
	{
		ID:          "entrepreneur_17",
		Stage:       game.StageEntrepreneur,
		Title:       "Patent Troll",
		Description: "A company with vague patents is threatening to sue.",
		Choices: []game.EventChoice{
			{
				ID:      "settle",
				Text:    "Settle quickly to avoid distraction",
				Effects: game.StatDeltas{Money: -8, Discipline: 3},
				Outcome: "Paid the toll. Back to building.",
			},
			{
				ID:      "fight_troll",
				Text:    "Fight it on principle",
				Effects: game.StatDeltas{Money: -12, Charisma: 4, Discipline: 8},
				Outcome: "Long battle but won. Established precedent.",
			},
		},
	},
	{
		ID:          "entrepreneur_18",
		Stage:       game.StageEntrepreneur,
		Title:       "Scaling Culture",
		Description: "Company culture is diluting as you hire fast.",
		Choices: []game.EventChoice{
			{
				ID:      "slow_hiring",
				Text:    "Slow down hiring, focus on culture",
				Effects: game.StatDeltas{Money: -3, Charisma: 8, Discipline: 6},
				Outcome: "Culture preserved. Growth slowed.",
			},
			{
				ID:      "culture_team",
				Text:    "Create a culture and HR team",
				Effects: game.StatDeltas{Money: -5, Intelligence: 4, Charisma: 5},
				Outcome: "Systematic approach to culture. Evolving.",
			},
		},
	},
	// CEO events
	{
		ID:          "ceo_1",
		Stage:       game.StageCEO,
		Title:       "Acquisition Offer",
		Description: "A big company wants to acquire you. It's a life-changing sum.",
		Choices: []game.EventChoice{
			{
				ID:      "sell",
				Text:    "Take the money and exit",
				Effects: game.StatDeltas{Money: 20, Discipline: -5, Investments: 15},
				Outcome: "Financial freedom achieved. What now?",
			},
			{
				ID:      "decline",
				Text:    "Decline and keep building",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: 8, Discipline: 10},
				Outcome: "Bet on yourself. Let's see how far this goes.",
			},
		},
	},
	{
		ID:          "ceo_2",
		Stage:       game.StageCEO,
		Title:       "Global Expansion",
		Description: "Opportunity to expand internationally. High cost, high reward.",
		Choices: []game.EventChoice{
			{
				ID:      "expand",
				Text:    "Go global aggressively",
				Effects: game.StatDeltas{Money: -10, Intelligence: 5, Charisma: 8, Investments: 12},
				Outcome: "Now operating on the world stage.",
			},
			{
				ID:      "consolidate",
				Text:    "Consolidate current markets first",
				Effects: game.StatDeltas{Money: 8, Discipline: 6, Investments: 4},
				Outcome: "Strengthened foundation before scaling.",
			},
		},
	},
	{
		ID:          "ceo_3",
		Stage:       game.StageCEO,
		Title:       "Executive Health",
		Description: "Running a company takes its toll. Doctor recommends lifestyle changes.",
		Choices: []game.EventChoice{
			{
				ID:      "prioritize_health",
				Text:    "Hire executive coach, prioritize wellness",
				Effects: game.StatDeltas{Money: -5, Fitness: 12, Charisma: 4, Discipline: 6},
				Outcome: "Optimized performance at all levels.",
			},
			{
				ID:      "later",
				Text:    "Company needs me now, health can wait",
				Effects: game.StatDeltas{Money: 5, Fitness: -8, Discipline: 3},
				Outcome: "Short-term focus, long-term risk.",
			},
		},
	},
	{
		ID:          "ceo_4",
		Stage:       game.StageCEO,
		Title:       "Philanthropy",
		Description: "You have resources now. Time to give back?",
		Choices: []game.EventChoice{
			{
				ID:      "start_foundation",
				Text:    "Start a charitable foundation",
				Effects: game.StatDeltas{Money: -8, Intelligence: 3, Charisma: 10, Discipline: 4},
				Outcome: "Legacy beyond business begins.",
			},
			{
				ID:      "strategic_giving",
				Text:    "Strategic giving that aligns with business",
				Effects: game.StatDeltas{Money: -3, Charisma: 6, Investments: 5},
				Outcome: "Purpose and profit aligned.",
			},
		},
	},
	{
		ID:          "ceo_5",
		Stage:       game.StageCEO,
		Title:       "IPO Consideration",
		Description: "Bankers are pitching an IPO. Public markets beckon.",
		Choices: []game.EventChoice{
			{
				ID:      "go_public",
				Text:    "Pursue the IPO",
				Effects: game.StatDeltas{Money: 10, Charisma: 8, Discipline: -3, Investments: 15},
				Outcome: "Public company CEO now. Quarterly pressure begins.",
			},
			{
				ID:      "stay_private",
				Text:    "Stay private for now",
				Effects: game.StatDeltas{Discipline: 8, Investments: 5},
				Outcome: "Flexibility preserved. Long-term thinking.",
			},
		},
	},
	{
		ID:          "ceo_6",
		Stage:       game.StageCEO,
		Title:       "Regulatory Challenge",
		Description: "Government is scrutinizing your industry.",
		Choices: []game.EventChoice{
			{
				ID:      "lobby_hard",
				Text:    "Invest in lobbying efforts",
				Effects: game.StatDeltas{Money: -10, Charisma: 6, Investments: 5},
				Outcome: "Seat at the regulatory table. Influence gained.",
			},
			{
				ID:      "comply_adapt",
				Text:    "Focus on compliance and adaptation",
				Effects: game.StatDeltas{Money: -3, Intelligence: 6, Discipline: 8},
				Outcome: "Played by the rules. Competitors struggle.",
			},
		},
	},
	{
		ID:          "ceo_7",
		Stage:       game.StageCEO,
		Title:       "Succession Planning",
		Description: "You can't run this forever. Who takes over?",
		Choices: []game.EventChoice{
			{
				ID:      "groom_internal",
				Text:    "Groom internal successor",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: 6, Discipline: 8},
				Outcome: "Building next generation of leadership.",
			},
			{
				ID:      "hire_external",
				Text:    "Plan to hire external CEO eventually",
				Effects: game.StatDeltas{Intelligence: 5, Discipline: 3, Investments: 4},
				Outcome: "Open to fresh perspectives when the time comes.",
			},
			{
				ID:      "stay_forever",
				Text:    "Plan to run it forever",
				Effects: game.StatDeltas{Fitness: -4, Charisma: 3, Discipline: -3},
				Outcome: "Founder CEO until the end. Succession? What succession?",
			},
		},
	},
	{
		ID:          "ceo_8",
		Stage:       game.StageCEO,
		Title:       "Market Downturn",
		Description: "Economic recession hits. Revenue dropping.",
		Choices: []game.EventChoice{
			{
				ID:      "layoffs",
				Text:    "Conduct necessary layoffs",
				Effects: game.StatDeltas{Money: 10, Charisma: -8, Discipline: 6},
				Outcome: "Painful but company survives. Trust shaken.",
			},
			{
				ID:      "salary_cuts",
				Text:    "Company-wide salary cuts instead",
				Effects: game.StatDeltas{Money: 6, Charisma: 4, Discipline: 5},
				Outcome: "Everyone sacrificed together. Morale preserved.",
			},
			{
				ID:      "double_down",
				Text:    "Double down on growth",
				Effects: game.StatDeltas{Money: -8, Discipline: 8, Investments: 10},
				Outcome: "Contrarian bet. Either genius or disaster.",
			},
		},
	},
	{
		ID:          "ceo_9",
		Stage:       game.StageCEO,
		Title:       "Board Politics",
		Description: "Board members are pushing their own agenda.",
		Choices: []game.EventChoice{
			{
				ID:      "assert_control",
				Text:    "Assert founder authority",
				Effects: game.StatDeltas{Charisma: -4, Discipline: 10, Investments: 5},
				Outcome: "Made clear who runs the show. Some tension.",
			},
			{
				ID:      "build_consensus",
				Text:    "Build consensus and align",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: 8, Discipline: 4},
				Outcome: "Diplomatic approach worked. Alignment achieved.",
			},
		},
	},
	{
		ID:          "ceo_10",
		Stage:       game.StageCEO,
		Title:       "Strategic Acquisition",
		Description: "Opportunity to acquire a competitor.",
		Choices: []game.EventChoice{
			{
				ID:      "acquire",
				Text:    "Make the acquisition",
				Effects: game.StatDeltas{Money: -15, Intelligence: 6, Investments: 12},
				Outcome: "Market share gained. Integration begins.",
			},
			{
				ID:      "organic_growth",
				Text:    "Focus on organic growth instead",
				Effects: game.StatDeltas{Money: 5, Discipline: 6},
				Outcome: "Stayed focused on core business.",
			},
		},
	},
	{
		ID:          "ceo_11",
		Stage:       game.StageCEO,
		Title:       "Personal Brand",
		Description: "Advisors suggest building your personal brand as CEO.",
		Choices: []game.EventChoice{
			{
				ID:      "thought_leader",
				Text:    "Become an industry thought leader",
				Effects: game.StatDeltas{Fitness: -3, Intelligence: 5, Charisma: 12},
				Outcome: "Conference keynotes and media appearances. Famous now.",
			},
			{
				ID:      "product_focused",
				Text:    "Stay product-focused, avoid spotlight",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 6},
				Outcome: "Let the work speak for itself.",
			},
		},
	},
	{
		ID:          "ceo_12",
		Stage:       game.StageCEO,
		Title:       "Family Tension",
		Description: "Family complains you're never present.",
		Choices: []game.EventChoice{
			{
				ID:      "schedule_family",
				Text:    "Block family time religiously",
				Effects: game.StatDeltas{Fitness: 6, Charisma: 5, Discipline: -2},
				Outcome: "Finding balance. Family appreciates effort.",
			},
			{
				ID:      "explain_phase",
				Text:    "Explain it's a temporary phase",
				Effects: game.StatDeltas{Charisma: -4, Discipline: 4},
				Outcome: "They heard that before. Tension remains.",
			},
		},
	},
	{
		ID:          "ceo_13",
		Stage:       game.StageCEO,
		Title:       "Crypto Treasury",
		Description: "CFO suggests putting company treasury in crypto.",
		Choices: []game.EventChoice{
			{
				ID:      "crypto_treasury",
				Text:    "Allocate 10% to crypto",
				Effects: game.StatDeltas{Money: -5, Intelligence: 4, Investments: 12},
				Outcome: "Bold move. Treasury strategy evolving.",
			},
			{
				ID:      "traditional_treasury",
				Text:    "Keep traditional treasury management",
				Effects: game.StatDeltas{Money: 3, Discipline: 5},
				Outcome: "Conservative approach. Board approves.",
			},
		},
	},
	{
		ID:          "ceo_14",
		Stage:       game.StageCEO,
		Title:       "Executive Team Expansion",
		Description: "Growing fast. Need to expand the C-suite.",
		Choices: []game.EventChoice{
			{
				ID:      "hire_star",
				Text:    "Hire industry star CMO",
				Effects: game.StatDeltas{Money: -10, Charisma: 10, Investments: 6},
				Outcome: "Star power acquired. Expectations high.",
			},
			{
				ID:      "promote_internal",
				Text:    "Promote from within",
				Effects: game.StatDeltas{Money: -3, Charisma: 6, Discipline: 5},
				Outcome: "Loyalty rewarded. Learning curve acceptable.",
			},
		},
	},
	{
		ID:          "ceo_15",
		Stage:       game.StageCEO,
		Title:       "Industry Award",
		Description: "Nominated for prestigious industry award.",
		Choices: []game.EventChoice{
			{
				ID:      "campaign",
				Text:    "Campaign actively for it",
				Effects: game.StatDeltas{Money: -3, Charisma: 8, Discipline: 3},
				Outcome: "Won the award. Great PR.",
			},
			{
				ID:      "humble",
				Text:    "Let merit speak for itself",
				Effects: game.StatDeltas{Intelligence: 3, Discipline: 5},
				Outcome: "Didn't win but maintained integrity.",
			},
		},
	},
	{
		ID:          "ceo_16",
		Stage:       game.StageCEO,
		Title:       "Technology Bet",
		Description: "New technology could disrupt your entire industry.",
		Choices: []game.EventChoice{
			{
				ID:      "embrace_tech",
				Text:    "Go all-in on the new tech",
				Effects: game.StatDeltas{Money: -8, Intelligence: 12, Investments: 10},
				Outcome: "Leading the disruption now.",
			},
			{
				ID:      "wait_see",
				Text:    "Wait and see how it develops",
				Effects: game.StatDeltas{Money: 5, Discipline: 5},
				Outcome: "Watching from sidelines. Risk of falling behind.",
			},
		},
	},
	// Investor events
	{
		ID:          "investor_1",
		Stage:       game.StageInvestor,
		Title:       "Angel Investment",
		Description: "A promising startup founder pitches you. Reminds you of your younger self.",
		Choices: []game.EventChoice{
			{
				ID:      "invest_big",
				Text:    "Make a significant investment",
				Effects: game.StatDeltas{Money: -10, Intelligence: 4, Charisma: 6, Investments: 12},
				Outcome: "Mentoring the next generation.",
			},
			{
				ID:      "invest_small",
				Text:    "Small check, observe from distance",
				Effects: game.StatDeltas{Money: -3, Intelligence: 3, Investments: 5},
				Outcome: "Diversified bet with limited exposure.",
			},
			{
				ID:      "pass",
				Text:    "Pass on this one",
				Effects: game.StatDeltas{Money: 2, Discipline: 4},
				Outcome: "Preserved capital for better opportunities.",
			},
		},
	},
	{
		ID:          "investor_2",
		Stage:       game.StageInvestor,
		Title:       "Market Crash",
		Description: "Markets are down 40%. Your portfolio is bleeding.",
		Choices: []game.EventChoice{
			{
				ID:      "buy_dip",
				Text:    "Buy the dip aggressively",
				Effects: game.StatDeltas{Money: -12, Discipline: 8, Investments: 15},
				Outcome: "Contrarian bet. Time will tell.",
			},
			{
				ID:      "hold",
				Text:    "Hold positions, stay the course",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 10},
				Outcome: "Emotional control preserved capital.",
			},
			{
				ID:      "panic_sell",
				Text:    "Reduce exposure, protect capital",
				Effects: game.StatDeltas{Money: 5, Discipline: -4, Investments: -8},
				Outcome: "Preserved some capital, missed recovery.",
			},
		},
	},
	{
		ID:          "investor_3",
		Stage:       game.StageInvestor,
		Title:       "Crypto Protocol",
		Description: "Opportunity to become a major stakeholder in a new L1 blockchain.",
		Choices: []game.EventChoice{
			{
				ID:      "go_all_in",
				Text:    "Major allocation to this bet",
				Effects: game.StatDeltas{Money: -15, Intelligence: 5, Investments: 18},
				Outcome: "High conviction bet on the future.",
			},
			{
				ID:      "moderate_position",
				Text:    "Take a moderate position",
				Effects: game.StatDeltas{Money: -5, Discipline: 4, Investments: 8},
				Outcome: "Balanced risk-reward approach.",
			},
		},
	},
	{
		ID:          "investor_4",
		Stage:       game.StageInvestor,
		Title:       "Speaking Engagement",
		Description: "Invited to speak at a major investment conference.",
		Choices: []game.EventChoice{
			{
				ID:      "accept",
				Text:    "Share your wisdom with the world",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: 12, Investments: 4},
				Outcome: "Became a thought leader in the space.",
			},
			{
				ID:      "decline",
				Text:    "Stay private, focus on returns",
				Effects: game.StatDeltas{Discipline: 6, Investments: 5},
				Outcome: "Maintained mystique and focus.",
			},
		},
	},
	{
		ID:          "investor_5",
		Stage:       game.StageInvestor,
		Title:       "Fund Launch",
		Description: "LPs want you to launch your own fund.",
		Choices: []game.EventChoice{
			{
				ID:      "launch_fund",
				Text:    "Launch a formal fund",
				Effects: game.StatDeltas{Money: 10, Charisma: 8, Discipline: -4, Investments: 15},
				Outcome: "Fund manager now. New responsibilities.",
			},
			{
				ID:      "stay_independent",
				Text:    "Continue investing independently",
				Effects: game.StatDeltas{Discipline: 6, Investments: 5},
				Outcome: "Freedom preserved. No LP obligations.",
			},
		},
	},
	{
		ID:          "investor_6",
		Stage:       game.StageInvestor,
		Title:       "Portfolio Company Crisis",
		Description: "One of your investments is in trouble. They need more money.",
		Choices: []game.EventChoice{
			{
				ID:      "double_down",
				Text:    "Double down with follow-on investment",
				Effects: game.StatDeltas{Money: -10, Discipline: 5, Investments: 8},
				Outcome: "Showed conviction. Sinking ship or turnaround?",
			},
			{
				ID:      "cut_losses",
				Text:    "Cut losses and move on",
				Effects: game.StatDeltas{Money: -3, Intelligence: 3, Discipline: 6},
				Outcome: "Painful but rational. Capital preserved.",
			},
		},
	},
	{
		ID:          "investor_7",
		Stage:       game.StageInvestor,
		Title:       "Emerging Market",
		Description: "Opportunity to invest in emerging markets. Higher risk, higher potential.",
		Choices: []game.EventChoice{
			{
				ID:      "emerging_bet",
				Text:    "Make significant emerging market allocation",
				Effects: game.StatDeltas{Money: -8, Intelligence: 5, Investments: 12},
				Outcome: "Geographic diversification. New frontier.",
			},
			{
				ID:      "stick_developed",
				Text:    "Stick to developed markets",
				Effects: game.StatDeltas{Discipline: 5, Investments: 3},
				Outcome: "Stayed in comfort zone. Lower risk, lower reward.",
			},
		},
	},
	{
		ID:          "investor_8",
		Stage:       game.StageInvestor,
		Title:       "Tax Optimization",
		Description: "Advisors suggest aggressive tax strategies.",
		Choices: []game.EventChoice{
			{
				ID:      "aggressive_tax",
				Text:    "Pursue aggressive optimization",
				Effects: game.StatDeltas{Money: 10, Discipline: -3, Investments: 3},
				Outcome: "Saved significantly. Staying legal but edgy.",
			},
			{
				ID:      "conservative_tax",
				Text:    "Stay conservative on taxes",
				Effects: game.StatDeltas{Money: -3, Discipline: 5},
				Outcome: "Sleep well at night. Paid your share.",
			},
		},
	},
	{
		ID:          "investor_9",
		Stage:       game.StageInvestor,
		Title:       "Mentor Request",
		Description: "Young entrepreneurs constantly ask for your time.",
		Choices: []game.EventChoice{
			{
				ID:      "give_back",
				Text:    "Dedicate time to mentoring",
				Effects: game.StatDeltas{Fitness: -2, Intelligence: 4, Charisma: 10},
				Outcome: "Giving back to the ecosystem. Fulfilling.",
			},
			{
				ID:      "protect_time",
				Text:    "Protect your time, politely decline",
				Effects: game.StatDeltas{Discipline: 5, Investments: 4},
				Outcome: "Time is finite. Stayed focused.",
			},
		},
	},
	{
		ID:          "investor_10",
		Stage:       game.StageInvestor,
		Title:       "Real Estate Diversification",
		Description: "Opportunity to diversify into commercial real estate.",
		Choices: []game.EventChoice{
			{
				ID:      "real_estate",
				Text:    "Allocate to real estate",
				Effects: game.StatDeltas{Money: -10, Discipline: 4, Investments: 8},
				Outcome: "Tangible assets. Portfolio diversified.",
			},
			{
				ID:      "stay_liquid",
				Text:    "Prefer liquid investments",
				Effects: game.StatDeltas{Money: 3, Investments: 3},
				Outcome: "Liquidity preserved. Flexibility maintained.",
			},
		},
	},
	{
		ID:          "investor_11",
		Stage:       game.StageInvestor,
		Title:       "Family Office",
		Description: "Wealth is complex enough to warrant a family office.",
		Choices: []game.EventChoice{
			{
				ID:      "establish_fo",
				Text:    "Establish family office",
				Effects: game.StatDeltas{Money: -8, Intelligence: 6, Discipline: 5, Investments: 5},
				Outcome: "Professional wealth management. New complexity.",
			},
			{
				ID:      "keep_simple",
				Text:    "Keep things simple",
				Effects: game.StatDeltas{Money: 3, Discipline: 4},
				Outcome: "Simplicity has value. Self-managed.",
			},
		},
	},
	{
		ID:          "investor_12",
		Stage:       game.StageInvestor,
		Title:       "Book Deal",
		Description: "Publisher wants you to write about your investment philosophy.",
		Choices: []game.EventChoice{
			{
				ID:      "write_book",
				Text:    "Write the book",
				Effects: game.StatDeltas{Fitness: -4, Intelligence: 6, Charisma: 12},
				Outcome: "Became an author. Legacy in print.",
			},
			{
				ID:      "decline_book",
				Text:    "Decline, focus on investing",
				Effects: game.StatDeltas{Discipline: 5, Investments: 5},
				Outcome: "Let the returns be the statement.",
			},
		},
	},
	{
		ID:          "investor_13",
		Stage:       game.StageInvestor,
		Title:       "LP Drama",
		Description: "A major LP wants to pull out of your fund.",
		Choices: []game.EventChoice{
			{
				ID:      "accommodate",
				Text:    "Accommodate their exit",
				Effects: game.StatDeltas{Money: -5, Charisma: 4, Discipline: 3},
				Outcome: "Maintained relationship. Some pain.",
			},
			{
				ID:      "enforce_terms",
				Text:    "Enforce the fund terms",
				Effects: game.StatDeltas{Money: 3, Charisma: -5, Discipline: 6},
				Outcome: "Rules are rules. Professional but cold.",
			},
		},
	},
	{
		ID:          "investor_14",
		Stage:       game.StageInvestor,
		Title:       "Governance Role",
		Description: "Offered a board seat at a major DAO.",
		Choices: []game.EventChoice{
			{
				ID:      "join_dao",
				Text:    "Accept the DAO governance role",
				Effects: game.StatDeltas{Intelligence: 6, Charisma: 5, Investments: 8},
				Outcome: "Part of decentralized governance. Interesting times.",
			},
			{
				ID:      "observe_dao",
				Text:    "Decline but observe from distance",
				Effects: game.StatDeltas{Intelligence: 3, Discipline: 4},
				Outcome: "Learning without commitment.",
			},
		},
	},
	{
		ID:          "investor_15",
		Stage:       game.StageInvestor,
		Title:       "Media Scrutiny",
		Description: "Journalists are investigating wealthy investors like you.",
		Choices: []game.EventChoice{
			{
				ID:      "transparent",
				Text:    "Be fully transparent",
				Effects: game.StatDeltas{Charisma: 6, Discipline: 5},
				Outcome: "Nothing to hide. Reputation intact.",
			},
			{
				ID:      "no_comment",
				Text:    "No comment, protect privacy",
				Effects: game.StatDeltas{Charisma: -4, Discipline: 4},
				Outcome: "Privacy preserved. Some speculation.",
			},
		},
	},
	{
		ID:          "investor_16",
		Stage:       game.StageInvestor,
		Title:       "Generation Wealth Transfer",
		Description: "Time to think about passing wealth to next generation.",
		Choices: []game.EventChoice{
			{
				ID:      "early_transfer",
				Text:    "Begin structured wealth transfer now",
				Effects: game.StatDeltas{Money: -5, Intelligence: 5, Discipline: 8},
				Outcome: "Planning for legacy. Tax efficient.",
			},
			{
				ID:      "delay_transfer",
				Text:    "Keep control for now",
				Effects: game.StatDeltas{Money: 5, Discipline: 3},
				Outcome: "Maintaining control. Transfer can wait.",
			},
		},
	},
	// Sigma elite events
	{
		ID:          "sigma_1",
		Stage:       game.StageSigmaElite,
		Title:       "Ultimate Choice",
		Description: "You've reached the top. What's the meaning of all this?",
		Choices: []game.EventChoice{
			{
				ID:      "keep_grinding",
				Text:    "The grind never stops",
				Effects: game.StatDeltas{Fitness: 3, Discipline: 5, Investments: 5},
				Outcome: "True sigma energy. No ceiling.",
			},
			{
				ID:      "help_others",
				Text:    "Help others reach their potential",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: 8, Discipline: 3},
				Outcome: "Legacy through impact on others.",
			},
			{
				ID:      "balance",
				Text:    "Finally find balance and peace",
				Effects: game.StatDeltas{Fitness: 8, Charisma: 5, Discipline: 2},
				Outcome: "Inner peace achieved. You won.",
			},
		},
	},
	{
		ID:          "sigma_2",
		Stage:       game.StageSigmaElite,
		Title:       "Global Impact",
		Description: "Your wealth could solve major world problems. How do you deploy it?",
		Choices: []game.EventChoice{
			{
				ID:      "moonshot",
				Text:    "Fund moonshot technology",
				Effects: game.StatDeltas{Money: -10, Intelligence: 8, Investments: 10},
				Outcome: "Betting on humanity-changing tech.",
			},
			{
				ID:      "education",
				Text:    "Build schools and educate millions",
				Effects: game.StatDeltas{Money: -8, Charisma: 10, Discipline: 5},
				Outcome: "Knowledge as the ultimate gift.",
			},
			{
				ID:      "preserve_wealth",
				Text:    "Preserve wealth for future generations",
				Effects: game.StatDeltas{Money: 5, Discipline: 5, Investments: 5},
				Outcome: "Dynasty building mode activated.",
			},
		},
	},
	{
		ID:          "sigma_3",
		Stage:       game.StageSigmaElite,
		Title:       "Peak Performance",
		Description: "You operate at elite levels. How do you maintain it?",
		Choices: []game.EventChoice{
			{
				ID:      "biohacking",
				Text:    "Cutting-edge biohacking and optimization",
				Effects: game.StatDeltas{Money: -5, Fitness: 10, Intelligence: 6},
				Outcome: "Pushing human limits.",
			},
			{
				ID:      "mindfulness",
				Text:    "Meditation and ancient wisdom",
				Effects: game.StatDeltas{Fitness: 4, Charisma: 6, Discipline: 8},
				Outcome: "Inner strength is true strength.",
			},
		},
	},
	{
		ID:          "sigma_4",
		Stage:       game.StageSigmaElite,
		Title:       "Political Influence",
		Description: "Your resources could shape policy and politics.",
		Choices: []game.EventChoice{
			{
				ID:      "stay_out",
				Text:    "Stay out of politics",
				Effects: game.StatDeltas{Charisma: -2, Discipline: 6},
				Outcome: "Avoided the mess. Business focused.",
			},
			{
				ID:      "influence_policy",
				Text:    "Use influence for causes you believe in",
				Effects: game.StatDeltas{Money: -8, Charisma: 10, Investments: 5},
				Outcome: "Political capital deployed. Mixed reactions.",
			},
		},
	},
	{
		ID:          "sigma_5",
		Stage:       game.StageSigmaElite,
		Title:       "Space Venture",
		Description: "Opportunity to invest in commercial space exploration.",
		Choices: []game.EventChoice{
			{
				ID:      "go_space",
				Text:    "Fund a space venture",
				Effects: game.StatDeltas{Money: -15, Intelligence: 8, Investments: 15},
				Outcome: "Looking beyond Earth. Ultimate moonshot.",
			},
			{
				ID:      "earth_first",
				Text:    "Focus on earthly problems first",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 4, Discipline: 5},
				Outcome: "Grounded approach. Plenty to fix down here.",
			},
		},
	},
	{
		ID:          "sigma_6",
		Stage:       game.StageSigmaElite,
		Title:       "Media Empire",
		Description: "Opportunity to acquire or start a media company.",
		Choices: []game.EventChoice{
			{
				ID:      "media_mogul",
				Text:    "Become a media mogul",
				Effects: game.StatDeltas{Money: -12, Charisma: 15, Investments: 8},
				Outcome: "Controlling narratives now. Great power, great responsibility.",
			},
			{
				ID:      "stay_out_media",
				Text:    "Media is too messy, pass",
				Effects: game.StatDeltas{Money: 3, Discipline: 5},
				Outcome: "Avoided the headaches. Peace preserved.",
			},
		},
	},
	{
		ID:          "sigma_7",
		Stage:       game.StageSigmaElite,
		Title:       "Longevity Research",
		Description: "Cutting-edge longevity research needs funding.",
		Choices: []game.EventChoice{
			{
				ID:      "fund_longevity",
				Text:    "Fund longevity research",
				Effects: game.StatDeltas{Money: -10, Fitness: 8, Intelligence: 10},
				Outcome: "Investing in extending human life. Including yours.",
			},
			{
				ID:      "accept_mortality",
				Text:    "Accept mortality, focus on legacy",
				Effects: game.StatDeltas{Charisma: 5, Discipline: 6},
				Outcome: "Some things are beyond control. Legacy matters more.",
			},
		},
	},
	{
		ID:          "sigma_8",
		Stage:       game.StageSigmaElite,
		Title:       "Decentralization Champion",
		Description: "You could use your influence to advance decentralization.",
		Choices: []game.EventChoice{
			{
				ID:      "fund_decentralization",
				Text:    "Fund decentralization projects",
				Effects: game.StatDeltas{Intelligence: 8, Charisma: 6, Investments: 12},
				Outcome: "Building infrastructure for a decentralized future.",
			},
			{
				ID:      "pragmatic",
				Text:    "Stay pragmatic, use whatever works",
				Effects: game.StatDeltas{Money: 5, Discipline: 5},
				Outcome: "Tools are just tools. Results matter.",
			},
		},
	},
	{
		ID:          "sigma_9",
		Stage:       game.StageSigmaElite,
		Title:       "Ultimate Mentorship",
		Description: "A young entrepreneur wants to dedicate years to learning from you.",
		Choices: []game.EventChoice{
			{
				ID:      "take_apprentice",
				Text:    "Take them as an apprentice",
				Effects: game.StatDeltas{Intelligence: 5, Charisma: 10, Discipline: 3},
				Outcome: "Passing on decades of wisdom. Legacy continues.",
			},
			{
				ID:      "decline_mentorship",
				Text:    "Point them to resources, you're too busy",
				Effects: game.StatDeltas{Money: 3, Discipline: 4},
				Outcome: "Time is your scarcest resource. Boundaries necessary.",
			},
		},
	},
	{
		ID:          "sigma_10",
		Stage:       game.StageSigmaElite,
		Title:       "Documentary Offer",
		Description: "Famous filmmaker wants to make a documentary about your life.",
		Choices: []game.EventChoice{
			{
				ID:      "allow_documentary",
				Text:    "Allow full access",
				Effects: game.StatDeltas{Intelligence: 3, Charisma: 12, Discipline: -3},
				Outcome: "Story told to the world. Vulnerable but authentic.",
			},
			{
				ID:      "decline_documentary",
				Text:    "Decline, protect privacy",
				Effects: game.StatDeltas{Charisma: -3, Discipline: 6},
				Outcome: "Privacy preserved. Mystique maintained.",
			},
		},
	},
	{
		ID:          "sigma_11",
		Stage:       game.StageSigmaElite,
		Title:       "Climate Crisis",
		Description: "Your resources could significantly impact climate change.",
		Choices: []game.EventChoice{
			{
				ID:      "climate_all_in",
				Text:    "Go all-in on climate solutions",
				Effects: game.StatDeltas{Money: -12, Charisma: 10, Investments: 10},
				Outcome: "Fighting for the planet's future. Defining cause.",
			},
			{
				ID:      "diversified_giving",
				Text:    "Diversify giving across causes",
				Effects: game.StatDeltas{Money: -5, Charisma: 6, Investments: 5},
				Outcome: "Spreading impact across multiple fronts.",
			},
		},
	},
	{
		ID:          "sigma_12",
		Stage:       game.StageSigmaElite,
		Title:       "Health Crisis",
		Description: "Despite success, your health takes a serious hit.",
		Choices: []game.EventChoice{
			{
				ID:      "full_recovery",
				Text:    "Dedicate everything to recovery",
				Effects: game.StatDeltas{Money: -10, Fitness: 15, Discipline: 8},
				Outcome: "Health is the ultimate wealth. Full focus on recovery.",
			},
			{
				ID:      "keep_working",
				Text:    "Keep working through it",
				Effects: game.StatDeltas{Money: 5, Fitness: -10, Discipline: -5},
				Outcome: "Workaholic to the end. Body screams, mind ignores.",
			},
		},
	},
	{
		ID:          "sigma_13",
		Stage:       game.StageSigmaElite,
		Title:       "Philosophy of Success",
		Description: "Asked to define your philosophy of success for a new generation.",
		Choices: []game.EventChoice{
			{
				ID:      "share_philosophy",
				Text:    "Share openly and authentically",
				Effects: game.StatDeltas{Intelligence: 6, Charisma: 10, Discipline: 4},
				Outcome: "Wisdom shared. Impact immeasurable.",
			},
			{
				ID:      "each_own_path",
				Text:    "Everyone must find their own path",
				Effects: game.StatDeltas{Intelligence: 4, Discipline: 5},
				Outcome: "Refused to prescribe. Autonomy respected.",
			},
		},
	},
	{
		ID:          "sigma_14",
		Stage:       game.StageSigmaElite,
		Title:       "Ultimate Competition",
		Description: "A new player enters your space with unlimited resources.",
		Choices: []game.EventChoice{
			{
				ID:      "compete_fiercely",
				Text:    "Compete fiercely, defend your position",
				Effects: game.StatDeltas{Fitness: -5, Intelligence: 8, Discipline: 10},
				Outcome: "Back to war mode. Competition fuel.",
			},
			{
				ID:      "collaborate",
				Text:    "Find ways to collaborate",
				Effects: game.StatDeltas{Intelligence: 4, Charisma: 8, Investments: 6},
				Outcome: "Competition into partnership. Rising tide.",
			},
			{
				ID:      "move_on",
				Text:    "You've won enough, move to new challenges",
				Effects: game.StatDeltas{Fitness: 3, Charisma: 4, Discipline: 5},
				Outcome: "Nothing left to prove. New horizons beckon.",
			},
		},
	},
	{
		ID:          "sigma_15",
		Stage:       game.StageSigmaElite,
		Title:       "The End Game",
		Description: "You've achieved everything. What now?",
		Choices: []game.EventChoice{
			{
				ID:      "never_retire",
				Text:    "Never retire, work until the end",
				Effects: game.StatDeltas{Fitness: -3, Discipline: 8, Investments: 5},
				Outcome: "Work is life. No regrets.",
			},
			{
				ID:      "enjoy_fruits",
				Text:    "Finally enjoy the fruits of labor",
				Effects: game.StatDeltas{Fitness: 10, Charisma: 8, Discipline: -4},
				Outcome: "Living well is the best revenge. Enjoying every moment.",
			},
			{
				ID:      "start_over",
				Text:    "Start something completely new from scratch",
				Effects: game.StatDeltas{Intelligence: 8, Discipline: 8, Investments: 6},
				Outcome: "Beginner's mind. The journey is the destination.",
			},
		},
	},
}
